// Package s3 implements ports.ObjectStore on Amazon S3 (or any S3-compatible service).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	backend "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/paddison/lesolver/pkg/domain"
)

// API is the subset of the S3 client used by Store.
type API interface {
	GetObject(ctx context.Context, in *backend.GetObjectInput, optFns ...func(*backend.Options)) (*backend.GetObjectOutput, error)
	PutObject(ctx context.Context, in *backend.PutObjectInput, optFns ...func(*backend.Options)) (*backend.PutObjectOutput, error)
}

// Options configures the S3 client built by New.
type Options struct {
	Region string
	// Endpoint overrides the service endpoint (MinIO, LocalStack).
	Endpoint     string
	UsePathStyle bool
}

// Store implements ports.ObjectStore using S3.
type Store struct {
	client API
}

// New loads the default AWS configuration (environment, shared config, instance role)
// and creates a Store.
func New(ctx context.Context, opts Options) (*Store, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := backend.NewFromConfig(cfg, func(o *backend.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})
	return NewFromClient(client), nil
}

// NewFromClient creates a Store from an existing client.
func NewFromClient(client API) *Store {
	return &Store{client: client}
}

// Get opens the object body. The caller closes it.
func (s *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &backend.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object from s3: %w", err)
	}
	return out.Body, nil
}

// Put uploads the object.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &backend.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object to s3: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
