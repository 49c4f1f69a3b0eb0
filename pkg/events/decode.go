// Package events decodes storage notifications into domain.StorageEvent.
//
// Two shapes are accepted: an S3 event notification
//
//	{"Records": [{"eventName": "ObjectCreated:Put", "s3": {"bucket": {"name": "in"}, "object": {"key": "a.txt"}}}]}
//
// and a flat document {"key": "a.txt", "bucket": "in"}.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
	"github.com/paddison/lesolver/pkg/domain"
)

var (
	// ErrMissingKey is returned when no object key can be found in the notification.
	ErrMissingKey = errors.New("notification has no object key")
	// ErrInvalidPayload is returned when the notification is not a JSON object.
	ErrInvalidPayload = errors.New("invalid notification payload")
)

type notification struct {
	Records []record `mapstructure:"Records"`

	// Flat form.
	Key       string `mapstructure:"key"`
	Bucket    string `mapstructure:"bucket"`
	EventName string `mapstructure:"event_name"`
}

type record struct {
	EventName string `mapstructure:"eventName"`
	S3        struct {
		Bucket struct {
			Name string `mapstructure:"name"`
		} `mapstructure:"bucket"`
		Object struct {
			Key string `mapstructure:"key"`
		} `mapstructure:"object"`
	} `mapstructure:"s3"`
}

// Result is a decoded notification.
type Result struct {
	Event domain.StorageEvent
	// Records is the number of records in an S3 notification. Only the first is used.
	Records int
}

// Decode parses a raw JSON notification.
func Decode(raw []byte) (Result, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return DecodeMap(doc)
}

// DecodeMap decodes an already unmarshalled notification.
func DecodeMap(doc map[string]any) (Result, error) {
	if doc == nil {
		return Result{}, fmt.Errorf("%w: empty document", ErrInvalidPayload)
	}

	var n notification
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &n,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Result{}, err
	}
	if err := dec.Decode(doc); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	res := Result{Records: len(n.Records)}
	if len(n.Records) > 0 {
		r := n.Records[0]
		res.Event = domain.StorageEvent{
			Key:       r.S3.Object.Key,
			Bucket:    r.S3.Bucket.Name,
			EventName: r.EventName,
		}
	} else {
		res.Event = domain.StorageEvent{Key: n.Key, Bucket: n.Bucket, EventName: n.EventName}
	}

	if res.Event.Key == "" {
		return res, ErrMissingKey
	}

	// S3 notifications URL-encode keys, with spaces as '+'.
	if res.Records > 0 {
		key, err := url.QueryUnescape(res.Event.Key)
		if err != nil {
			return res, fmt.Errorf("%w: undecodable key %q", ErrInvalidPayload, res.Event.Key)
		}
		res.Event.Key = key
	}
	return res, nil
}
