package lesolver_test

import (
	"context"
	"testing"

	"github.com/paddison/lesolver"
	"github.com/paddison/lesolver/pkg/adapters/memory"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresBuckets(t *testing.T) {
	_, err := lesolver.New("", "results", lesolver.WithStore(memory.NewStore()))
	assert.ErrorIs(t, err, domain.ErrMissingBucket)

	_, err = lesolver.New("uploads", "", lesolver.WithStore(memory.NewStore()))
	assert.ErrorIs(t, err, domain.ErrMissingBucket)
}

func TestNew_DefaultsToFileStore(t *testing.T) {
	t.Chdir(t.TempDir())

	svc, err := lesolver.New("uploads", "results")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, svc.Store().Put(ctx, "uploads", "a.txt", []byte("4\n8"), domain.ContentTypeText))

	outcome := svc.Handle(ctx, domain.StorageEvent{Key: "a.txt"})
	require.True(t, outcome.Succeeded(), outcome.Message)
	assert.Equal(t, "[2.0]", outcome.Result)
}

func TestHandleNotification(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, "uploads", "my system.txt", []byte("2 0\n0 2\n4\n4"), domain.ContentTypeText))

	svc, err := lesolver.New("uploads", "results",
		lesolver.WithStore(store),
		lesolver.WithIDGenerator(func() string { return "inv-1" }),
	)
	require.NoError(t, err)

	t.Run("S3 record", func(t *testing.T) {
		raw := []byte(`{"Records":[{"s3":{"bucket":{"name":"uploads"},"object":{"key":"my+system.txt"}}}]}`)
		outcome, err := svc.HandleNotification(ctx, raw)
		require.NoError(t, err)
		assert.True(t, outcome.Succeeded())
		assert.Equal(t, "my system.txt", outcome.Key)
		assert.Equal(t, "inv-1", outcome.InvocationID)
	})

	t.Run("Flat document", func(t *testing.T) {
		outcome, err := svc.HandleNotification(ctx, []byte(`{"key":"my system.txt"}`))
		require.NoError(t, err)
		assert.True(t, outcome.Succeeded())
	})

	t.Run("Invalid payload", func(t *testing.T) {
		_, err := svc.HandleNotification(ctx, []byte(`{}`))
		assert.Error(t, err)
	})
}

func TestSolve_Strictness(t *testing.T) {
	text := "1 0\n0 1\n1\n2\n3"

	strict, err := lesolver.New("in", "out", lesolver.WithStore(memory.NewStore()))
	require.NoError(t, err)
	_, err = strict.Solve(context.Background(), text)
	assert.ErrorIs(t, err, parser.ErrVectorLengthMismatch)

	// Permissive parsing passes the oversized vector on; the solver rejects it.
	permissive, err := lesolver.New("in", "out",
		lesolver.WithStore(memory.NewStore()),
		lesolver.WithStrictness(parser.Permissive),
	)
	require.NoError(t, err)
	_, err = permissive.Solve(context.Background(), text)
	assert.ErrorIs(t, err, domain.ErrMalformedSystem)

	sol, err := permissive.Solve(context.Background(), "1 0\n0 1\n1 2")
	require.NoError(t, err)
	assert.Equal(t, "[1.0, 2.0]", sol.String())
}

func TestResult(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, "uploads", "sys.txt", []byte("2 0\n0 2\n4\n4"), domain.ContentTypeText))

	svc, err := lesolver.New("uploads", "results", lesolver.WithStore(store))
	require.NoError(t, err)

	_, err = svc.Result(ctx, "sys.txt")
	assert.ErrorIs(t, err, domain.ErrObjectNotFound)

	require.True(t, svc.Handle(ctx, domain.StorageEvent{Key: "sys.txt"}).Succeeded())

	got, err := svc.Result(ctx, "sys.txt")
	require.NoError(t, err)
	assert.Equal(t, "[2.0, 2.0]", got)
}
