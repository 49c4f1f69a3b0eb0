// Package config loads the process configuration from an optional YAML file and
// environment variables. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/paddison/lesolver/internal/pipeline"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/parser"
	"gopkg.in/yaml.v3"
)

// ErrInvalidBackend is returned for an unknown storage backend name.
var ErrInvalidBackend = errors.New("invalid storage backend")

// Backend names an ObjectStore implementation.
type Backend string

const (
	BackendS3     Backend = "s3"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Environment variable names.
const (
	EnvReadBucket    = "READ_BUCKET"
	EnvWriteBucket   = "WRITE_BUCKET"
	EnvBackend       = "LESOLVER_BACKEND"
	EnvStrict        = "LESOLVER_STRICT"
	EnvMaxObjectSize = "LESOLVER_MAX_OBJECT_SIZE"
	EnvFileRoot      = "LESOLVER_FILE_ROOT"
	EnvRedisAddr     = "LESOLVER_REDIS_ADDR"
	EnvRedisPassword = "LESOLVER_REDIS_PASSWORD"
	EnvRedisDB       = "LESOLVER_REDIS_DB"
	EnvRedisPrefix   = "LESOLVER_REDIS_PREFIX"
	EnvRedisTTL      = "LESOLVER_REDIS_TTL"
	EnvS3Region      = "LESOLVER_S3_REGION"
	EnvS3Endpoint    = "LESOLVER_S3_ENDPOINT"
	EnvS3PathStyle   = "LESOLVER_S3_PATH_STYLE"
	EnvHTTPAddr      = "LESOLVER_HTTP_ADDR"
	EnvLogLevel      = "LESOLVER_LOG_LEVEL"
	EnvLogFormat     = "LESOLVER_LOG_FORMAT"
)

// Config is the process configuration.
type Config struct {
	ReadBucket    string  `yaml:"read_bucket"`
	WriteBucket   string  `yaml:"write_bucket"`
	Backend       Backend `yaml:"backend"`
	Strict        bool    `yaml:"strict"`
	MaxObjectSize int64   `yaml:"max_object_size"`

	File  FileConfig  `yaml:"file"`
	Redis RedisConfig `yaml:"redis"`
	S3    S3Config    `yaml:"s3"`
	HTTP  HTTPConfig  `yaml:"http"`
	Log   LogConfig   `yaml:"log"`
}

type FileConfig struct {
	Root string `yaml:"root"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type S3Config struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Backend: BackendS3,
		Strict:  true,
		File:    FileConfig{Root: ".lesolver/buckets"},
		Redis:   RedisConfig{Addr: "localhost:6379", Prefix: "lesolver:object:"},
		HTTP:    HTTPConfig{Addr: ":8080"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path (if not empty) and applies the process environment.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
		return nil
	}

	str(EnvReadBucket, &c.ReadBucket)
	str(EnvWriteBucket, &c.WriteBucket)
	if v, ok := lookup(EnvBackend); ok {
		c.Backend = Backend(v)
	}
	if err := boolean(EnvStrict, &c.Strict); err != nil {
		return err
	}
	if v, ok := lookup(EnvMaxObjectSize); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxObjectSize, err)
		}
		c.MaxObjectSize = n
	}

	str(EnvFileRoot, &c.File.Root)

	str(EnvRedisAddr, &c.Redis.Addr)
	str(EnvRedisPassword, &c.Redis.Password)
	str(EnvRedisPrefix, &c.Redis.Prefix)
	if v, ok := lookup(EnvRedisDB); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		c.Redis.DB = n
	}
	if v, ok := lookup(EnvRedisTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisTTL, err)
		}
		c.Redis.TTL = d
	}

	str(EnvS3Region, &c.S3.Region)
	str(EnvS3Endpoint, &c.S3.Endpoint)
	if err := boolean(EnvS3PathStyle, &c.S3.UsePathStyle); err != nil {
		return err
	}

	str(EnvHTTPAddr, &c.HTTP.Addr)
	str(EnvLogLevel, &c.Log.Level)
	str(EnvLogFormat, &c.Log.Format)
	return nil
}

// Validate reports missing buckets and unknown backends. Both are fatal at startup.
func (c *Config) Validate() error {
	if c.ReadBucket == "" {
		return fmt.Errorf("%w: set %s", domain.ErrMissingBucket, EnvReadBucket)
	}
	if c.WriteBucket == "" {
		return fmt.Errorf("%w: set %s", domain.ErrMissingBucket, EnvWriteBucket)
	}
	switch c.Backend {
	case BackendS3, BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}
	if c.MaxObjectSize < 0 {
		return fmt.Errorf("max_object_size must not be negative")
	}
	return nil
}

// Pipeline returns the orchestrator configuration.
func (c *Config) Pipeline() pipeline.Config {
	strictness := parser.Strict
	if !c.Strict {
		strictness = parser.Permissive
	}
	return pipeline.Config{
		ReadBucket:    c.ReadBucket,
		WriteBucket:   c.WriteBucket,
		Strictness:    strictness,
		MaxObjectSize: c.MaxObjectSize,
	}
}
