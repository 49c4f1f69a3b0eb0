package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/paddison/lesolver/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const (
	fieldBody        = "body"
	fieldContentType = "content_type"
)

// Store implements ports.ObjectStore using Redis.
// Each object is a hash holding its body and content type.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored objects.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for objects.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "lesolver:object:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(bucket, key string) string {
	return s.prefix + bucket + "/" + key
}

// Put stores the object, replacing any previous version.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	k := s.key(bucket, key)

	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k, fieldBody, body, fieldContentType, contentType)
		if s.ttl > 0 {
			pipe.Expire(ctx, k, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves the object body.
func (s *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	data, err := s.client.HGet(ctx, s.key(bucket, key), fieldBody).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ContentType returns the content type an object was stored with.
func (s *Store) ContentType(ctx context.Context, bucket, key string) (string, error) {
	ct, err := s.client.HGet(ctx, s.key(bucket, key), fieldContentType).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", domain.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return ct, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
