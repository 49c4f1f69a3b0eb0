package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/paddison/lesolver/pkg/domain"
)

type object struct {
	body        []byte
	contentType string
}

// Store implements ports.ObjectStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]object
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]object),
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

// Put stores a copy of body.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	copied := append([]byte(nil), body...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[objectKey(bucket, key)] = object{body: copied, contentType: contentType}
	return nil
}

// Get returns a reader over a copy of the stored object.
func (s *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.data[objectKey(bucket, key)]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(append([]byte(nil), obj.body...))), nil
}

// ContentType returns the content type an object was stored with.
func (s *Store) ContentType(bucket, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.data[objectKey(bucket, key)]
	return obj.contentType, ok
}

// List returns the keys stored in bucket, sorted.
func (s *Store) List(bucket string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := bucket + "/"
	keys := make([]string, 0)
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, strings.TrimPrefix(k, prefix))
		}
	}
	sort.Strings(keys)
	return keys
}
