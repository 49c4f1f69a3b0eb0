package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/paddison/lesolver"
	"github.com/paddison/lesolver/internal/config"
	"github.com/paddison/lesolver/internal/logging"
	"github.com/paddison/lesolver/pkg/adapters/file"
	"github.com/paddison/lesolver/pkg/adapters/memory"
	"github.com/paddison/lesolver/pkg/adapters/redis"
	"github.com/paddison/lesolver/pkg/adapters/s3"
	"github.com/paddison/lesolver/pkg/observability"
	"github.com/paddison/lesolver/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime bundles the service and its collaborators for one process.
type Runtime struct {
	Service *lesolver.Service
	Metrics *observability.Metrics
	Logger  *slog.Logger
	Config  *config.Config

	closeStore func() error
}

// Close releases connections held by the object store.
func (r *Runtime) Close() error {
	if r.closeStore == nil {
		return nil
	}
	return r.closeStore()
}

// NewLogger builds the process logger from the log section of cfg.
func NewLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level, format), nil
}

// NewStore creates the ObjectStore selected by cfg.Backend. The returned
// close function is never nil.
func NewStore(ctx context.Context, cfg *config.Config) (ports.ObjectStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendS3:
		store, err := s3.New(ctx, s3.Options{
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize s3 store: %w", err)
		}
		return store, noop, nil
	case config.BackendFile:
		return file.New(cfg.File.Root), noop, nil
	case config.BackendRedis:
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return store, store.Close, nil
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidBackend, cfg.Backend)
	}
}

// NewRuntime validates cfg and wires store, metrics and service together.
// Metrics register on reg; a nil reg gets a fresh registry.
func NewRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	store, closeStore, err := NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetricsWith(reg)
	hooks := metrics.Hooks()
	if logger.Enabled(ctx, slog.LevelDebug) {
		hooks = observability.ComposeHooks(hooks, observability.DebugHooks(logger))
	}

	pc := cfg.Pipeline()
	svc, err := lesolver.New(pc.ReadBucket, pc.WriteBucket,
		lesolver.WithStore(store),
		lesolver.WithStrictness(pc.Strictness),
		lesolver.WithMaxObjectSize(pc.MaxObjectSize),
		lesolver.WithLogger(logger),
		lesolver.WithLifecycleHooks(hooks),
	)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("error initializing service: %w", err)
	}

	return &Runtime{
		Service:    svc,
		Metrics:    metrics,
		Logger:     logger,
		Config:     cfg,
		closeStore: closeStore,
	}, nil
}
