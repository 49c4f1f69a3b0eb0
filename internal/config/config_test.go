package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv("", envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, BackendS3, cfg.Backend)
	assert.True(t, cfg.Strict)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.ErrorIs(t, cfg.Validate(), domain.ErrMissingBucket)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesolver.yaml")
	content := `
read_bucket: uploads
write_bucket: results
backend: redis
strict: false
redis:
  addr: redis:6379
  db: 2
  ttl: 10m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadWithEnv(path, envMap(map[string]string{
		EnvWriteBucket: "results-prod",
		EnvRedisDB:     "3",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "uploads", cfg.ReadBucket)
	assert.Equal(t, "results-prod", cfg.WriteBucket, "env wins over file")
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "lesolver:object:", cfg.Redis.Prefix, "defaults survive partial sections")
	assert.Equal(t, "debug", cfg.Log.Level)

	pc := cfg.Pipeline()
	assert.Equal(t, parser.Permissive, pc.Strictness)
	assert.Equal(t, "uploads", pc.ReadBucket)
}

func TestLoad_Errors(t *testing.T) {
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil))
	assert.Error(t, err)

	_, err = LoadWithEnv("", envMap(map[string]string{EnvStrict: "maybe"}))
	assert.Error(t, err)

	_, err = LoadWithEnv("", envMap(map[string]string{EnvRedisTTL: "soon"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.ReadBucket = "in"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrMissingBucket)

	cfg.WriteBucket = "out"
	assert.NoError(t, cfg.Validate())

	cfg.Backend = "ftp"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidBackend)
}
