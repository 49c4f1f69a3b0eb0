package ports

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/paddison/lesolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunObjectStoreContract runs a suite of tests to verify that an ObjectStore
// implementation adheres to the defined interface contract.
func RunObjectStoreContract(t *testing.T, store ObjectStore) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")
	bucket := "contract-bucket"
	key := "uploads/system-" + suffix + ".txt"

	read := func(t *testing.T, bucket, key string) string {
		t.Helper()
		rc, err := store.Get(ctx, bucket, key)
		require.NoError(t, err, "Get should not return error")
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, bucket, key, []byte("[2.0, 2.0]"), domain.ContentTypeText)
		require.NoError(t, err, "Put should not return error")

		assert.Equal(t, "[2.0, 2.0]", read(t, bucket, key))
	})

	t.Run("Put overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, bucket, key, []byte("first"), domain.ContentTypeText))
		require.NoError(t, store.Put(ctx, bucket, key, []byte("second"), domain.ContentTypeText))

		assert.Equal(t, "second", read(t, bucket, key))
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, bucket, "non-existent-"+suffix)
		assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	})

	t.Run("Buckets are isolated", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, bucket, "shared-"+suffix, []byte("in"), domain.ContentTypeText))

		_, err := store.Get(ctx, "other-bucket", "shared-"+suffix)
		assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	})

	t.Run("Stored bytes are not aliased", func(t *testing.T) {
		body := []byte("original")
		require.NoError(t, store.Put(ctx, bucket, "alias-"+suffix, body, domain.ContentTypeText))
		copy(body, "mutated!")

		assert.Equal(t, "original", read(t, bucket, "alias-"+suffix))
	})

	t.Run("Empty body", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, bucket, "empty-"+suffix, nil, domain.ContentTypeText))
		assert.Equal(t, "", read(t, bucket, "empty-"+suffix))
	})
}
