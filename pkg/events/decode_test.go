package events_test

import (
	"testing"

	"github.com/paddison/lesolver/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const s3Notification = `{
  "Records": [
    {
      "eventVersion": "2.1",
      "eventSource": "aws:s3",
      "eventName": "ObjectCreated:Put",
      "s3": {
        "bucket": {"name": "uploads", "arn": "arn:aws:s3:::uploads"},
        "object": {"key": "systems/my+system%281%29.txt", "size": 14}
      }
    }
  ]
}`

func TestDecode_S3Notification(t *testing.T) {
	res, err := events.Decode([]byte(s3Notification))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Records)
	assert.Equal(t, "systems/my system(1).txt", res.Event.Key)
	assert.Equal(t, "uploads", res.Event.Bucket)
	assert.Equal(t, "ObjectCreated:Put", res.Event.EventName)
}

func TestDecode_FlatDocument(t *testing.T) {
	res, err := events.Decode([]byte(`{"key": "a+b.txt", "bucket": "uploads"}`))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Records)
	assert.Equal(t, "a+b.txt", res.Event.Key, "flat keys are taken verbatim")
	assert.Equal(t, "uploads", res.Event.Bucket)
}

func TestDecode_MultipleRecordsUsesFirst(t *testing.T) {
	raw := `{"Records": [
		{"s3": {"object": {"key": "first.txt"}}},
		{"s3": {"object": {"key": "second.txt"}}}
	]}`
	res, err := events.Decode([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, "first.txt", res.Event.Key)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"Not JSON", `not json`, events.ErrInvalidPayload},
		{"JSON array", `[1, 2]`, events.ErrInvalidPayload},
		{"Null", `null`, events.ErrInvalidPayload},
		{"No key", `{"bucket": "uploads"}`, events.ErrMissingKey},
		{"Record without key", `{"Records": [{"s3": {"bucket": {"name": "x"}}}]}`, events.ErrMissingKey},
		{"Bad escape", `{"Records": [{"s3": {"object": {"key": "bad%zz"}}}]}`, events.ErrInvalidPayload},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := events.Decode([]byte(tc.raw))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
