package lesolver

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/paddison/lesolver/internal/logging"
	"github.com/paddison/lesolver/internal/pipeline"
	"github.com/paddison/lesolver/pkg/adapters/file"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/events"
	"github.com/paddison/lesolver/pkg/parser"
	"github.com/paddison/lesolver/pkg/ports"
	"github.com/paddison/lesolver/pkg/solver"
)

// Service is the high-level entry point of the library.
// It wraps the pipeline orchestrator and exposes a simplified API.
type Service struct {
	orchestrator *pipeline.Orchestrator
	store        ports.ObjectStore
	solver       ports.Solver
	parser       *parser.Parser
	cfg          pipeline.Config
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	newID        func() string
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithStore injects the object store, bypassing the default filesystem store.
func WithStore(store ports.ObjectStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithSolver replaces the Gaussian elimination solver.
func WithSolver(sv ports.Solver) Option {
	return func(s *Service) {
		s.solver = sv
	}
}

// WithStrictness sets how the parser treats the right-hand-side vector (default: Strict).
func WithStrictness(strictness parser.Strictness) Option {
	return func(s *Service) {
		s.cfg.Strictness = strictness
	}
}

// WithMaxObjectSize caps the size of fetched objects in bytes.
func WithMaxObjectSize(n int64) Option {
	return func(s *Service) {
		s.cfg.MaxObjectSize = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator replaces the invocation ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// New creates a Service reading uploads from readBucket and writing results to writeBucket.
// Both buckets are required.
func New(readBucket, writeBucket string, opts ...Option) (*Service, error) {
	s := &Service{
		cfg: pipeline.Config{ReadBucket: readBucket, WriteBucket: writeBucket},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = file.New("")
	}
	if s.solver == nil {
		s.solver = solver.New()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.parser = parser.New(s.cfg.Strictness)

	pipelineOpts := []pipeline.Option{
		pipeline.WithLogger(s.logger),
		pipeline.WithLifecycleHooks(s.hooks),
	}
	if s.newID != nil {
		pipelineOpts = append(pipelineOpts, pipeline.WithIDGenerator(s.newID))
	}

	orch, err := pipeline.New(s.cfg, s.store, s.solver, pipelineOpts...)
	if err != nil {
		return nil, err
	}
	s.orchestrator = orch
	s.cfg = orch.Config()
	return s, nil
}

// Handle processes one storage event and returns its Outcome.
func (s *Service) Handle(ctx context.Context, evt domain.StorageEvent) domain.Outcome {
	return s.orchestrator.Handle(ctx, evt)
}

// HandleNotification decodes a raw notification (S3 "Records" or a flat
// {"key": ...} document) and processes its first record.
func (s *Service) HandleNotification(ctx context.Context, raw []byte) (domain.Outcome, error) {
	res, err := events.Decode(raw)
	if err != nil {
		return domain.Outcome{}, err
	}
	if res.Records > 1 {
		s.logger.Warn("only the first record is processed", "records", res.Records, "key", res.Event.Key)
	}
	return s.orchestrator.Handle(ctx, res.Event), nil
}

// Solve parses and solves a system given as text, without touching storage.
func (s *Service) Solve(ctx context.Context, text string) (domain.Solution, error) {
	sys, err := s.parser.Parse(text)
	if err != nil {
		return domain.Solution{}, err
	}
	return s.solver.Solve(ctx, sys.Matrix, sys.Vector)
}

// Result reads the stored result for key from the write bucket.
// A missing result wraps domain.ErrObjectNotFound.
func (s *Service) Result(ctx context.Context, key string) (string, error) {
	rc, err := s.store.Get(ctx, s.cfg.WriteBucket, key)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, s.cfg.MaxObjectSize))
	if err != nil {
		return "", fmt.Errorf("read %s/%s: %w", s.cfg.WriteBucket, key, err)
	}
	return string(data), nil
}

// Store returns the object store used by the service.
func (s *Service) Store() ports.ObjectStore {
	return s.store
}

// Config returns the effective pipeline configuration.
func (s *Service) Config() pipeline.Config {
	return s.cfg
}
