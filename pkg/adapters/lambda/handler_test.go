package lambda_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/paddison/lesolver/internal/pipeline"
	"github.com/paddison/lesolver/pkg/adapters/lambda"
	"github.com/paddison/lesolver/pkg/adapters/memory"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, files map[string]string) *lambda.Handler {
	t.Helper()
	store := memory.NewStore()
	for k, v := range files {
		require.NoError(t, store.Put(context.Background(), "uploads", k, []byte(v), domain.ContentTypeText))
	}
	orch, err := pipeline.New(pipeline.Config{ReadBucket: "uploads", WriteBucket: "results"}, store, solver.New())
	require.NoError(t, err)
	return lambda.NewHandler(orch, nil)
}

func notification(key string) json.RawMessage {
	return json.RawMessage(`{"Records":[{"eventName":"ObjectCreated:Put","s3":{"bucket":{"name":"uploads"},"object":{"key":"` + key + `"}}}]}`)
}

func TestInvoke_Success(t *testing.T) {
	h := newHandler(t, map[string]string{"system.txt": "2 0\n0 2\n4\n4"})
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})

	outcome, err := h.Invoke(ctx, notification("system.txt"))

	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, "Result was: [2.0, 2.0], it was stored in bucket results/system.txt", outcome.Message)
}

func TestInvoke_FailureReturnsSafeError(t *testing.T) {
	h := newHandler(t, nil)

	outcome, err := h.Invoke(context.Background(), notification("missing.txt"))

	require.Error(t, err)
	assert.Equal(t, pipeline.MsgFetchFailed, err.Error())
	var fe *domain.FailureError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.StageFetching, outcome.Stage)
}

func TestInvoke_InvalidPayload(t *testing.T) {
	h := newHandler(t, nil)

	outcome, err := h.Invoke(context.Background(), json.RawMessage(`{"Records":[]}`))

	require.Error(t, err)
	assert.False(t, outcome.Succeeded())
	assert.Equal(t, "invalid storage notification", err.Error())
}
