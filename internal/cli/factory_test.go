package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/muesli/termenv"
	"github.com/paddison/lesolver/internal/config"
	"github.com/paddison/lesolver/internal/presentation/tui"
	"github.com/paddison/lesolver/pkg/adapters/file"
	"github.com/paddison/lesolver/pkg/adapters/memory"
	"github.com/paddison/lesolver/pkg/adapters/redis"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend config.Backend) *config.Config {
	cfg := config.Default()
	cfg.ReadBucket = "uploads"
	cfg.WriteBucket = "results"
	cfg.Backend = backend
	return cfg
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := NewStore(ctx, testConfig(config.BackendMemory))
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("File", func(t *testing.T) {
		cfg := testConfig(config.BackendFile)
		cfg.File.Root = t.TempDir()
		store, _, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		require.IsType(t, &file.Store{}, store)
		assert.Equal(t, cfg.File.Root, store.(*file.Store).BasePath)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(config.BackendRedis)
		cfg.Redis.Addr = mr.Addr()

		store, closeFn, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()
		require.IsType(t, &redis.Store{}, store)

		require.NoError(t, store.Put(ctx, "b", "k", []byte("v"), domain.ContentTypeText))
		assert.True(t, mr.Exists("lesolver:object:b/k"))
	})

	t.Run("Unknown backend", func(t *testing.T) {
		_, _, err := NewStore(ctx, testConfig("tape"))
		assert.ErrorIs(t, err, config.ErrInvalidBackend)
	})
}

func TestNewRuntime(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing bucket is fatal", func(t *testing.T) {
		cfg := testConfig(config.BackendMemory)
		cfg.WriteBucket = ""
		_, err := NewRuntime(ctx, cfg, nil, nil)
		assert.ErrorIs(t, err, domain.ErrMissingBucket)
	})

	t.Run("Handles an upload end to end", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		rt, err := NewRuntime(ctx, testConfig(config.BackendMemory), nil, reg)
		require.NoError(t, err)
		defer rt.Close()

		require.NoError(t, rt.Service.Store().Put(ctx, "uploads", "s.txt", []byte("2 0\n0 2\n4\n4"), domain.ContentTypeText))

		var buf bytes.Buffer
		outcome, err := Handle(ctx, rt, "s.txt", tui.NewRenderer(&buf, termenv.WithProfile(termenv.Ascii)))
		require.NoError(t, err)
		assert.Equal(t, "[2.0, 2.0]", outcome.Result)
		assert.Contains(t, buf.String(), "✔ success")

		families, err := reg.Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)
	})

	t.Run("Failure returns error", func(t *testing.T) {
		rt, err := NewRuntime(ctx, testConfig(config.BackendMemory), nil, nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		outcome, err := Handle(ctx, rt, "missing.txt", tui.NewRenderer(&buf, termenv.WithProfile(termenv.Ascii)))
		require.Error(t, err)
		assert.Equal(t, domain.StageFetching, outcome.Stage)
		assert.Contains(t, buf.String(), "failed while fetching")
	})
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig(config.BackendMemory)
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	cfg.Log.Level = "loud"
	_, err = NewLogger(cfg, &buf)
	assert.Error(t, err)
}
