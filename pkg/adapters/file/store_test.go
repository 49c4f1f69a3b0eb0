package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paddison/lesolver/pkg/adapters/file"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunObjectStoreContract(t, store)
}

func TestFileStore_Layout(t *testing.T) {
	root := t.TempDir()
	store := file.New(root)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "results", "2024/system.txt", []byte("[1.0]"), domain.ContentTypeText))

	data, err := os.ReadFile(filepath.Join(root, "results", "2024", "system.txt"))
	require.NoError(t, err)
	assert.Equal(t, "[1.0]", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "results", "2024"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_RejectsEscapingKeys(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../outside.txt", "a/../../outside.txt", ""} {
		err := store.Put(ctx, "results", key, []byte("x"), domain.ContentTypeText)
		assert.ErrorIs(t, err, file.ErrInvalidKey, "key %q", key)
	}

	for _, bucket := range []string{"", "..", "a/b"} {
		_, err := store.Get(ctx, bucket, "k")
		assert.ErrorIs(t, err, file.ErrInvalidKey, "bucket %q", bucket)
	}
}

func TestFileStore_DirectoryIsNotAnObject(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "b", "dir/leaf.txt", []byte("x"), domain.ContentTypeText))

	_, err := store.Get(ctx, "b", "dir")
	assert.ErrorIs(t, err, domain.ErrObjectNotFound)
}
