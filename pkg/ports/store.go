package ports

import (
	"context"
	"io"
)

// ObjectStore defines the object-storage capability used by the pipeline.
type ObjectStore interface {
	// Get opens the object stored under bucket/key. The caller closes the reader.
	// Returns domain.ErrObjectNotFound if the object does not exist.
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// Put stores body under bucket/key, replacing any existing object.
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
}
