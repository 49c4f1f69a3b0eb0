// Package lambda runs the pipeline as an AWS Lambda function triggered by S3 notifications.
package lambda

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/paddison/lesolver/internal/logging"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/events"
)

// Pipeline defines the interface of the event orchestrator.
type Pipeline interface {
	Handle(ctx context.Context, evt domain.StorageEvent) domain.Outcome
}

// Handler adapts a Pipeline to the Lambda runtime.
type Handler struct {
	pipeline Pipeline
	logger   *slog.Logger
}

// NewHandler creates a Handler. A nil logger disables logging.
func NewHandler(p Pipeline, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{pipeline: p, logger: logger}
}

// Invoke processes one notification. Failed invocations return the Outcome together
// with a *domain.FailureError so the runtime records the invocation as failed.
func (h *Handler) Invoke(ctx context.Context, payload json.RawMessage) (domain.Outcome, error) {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("aws_request_id", lc.AwsRequestID)
	}

	res, err := events.Decode(payload)
	if err != nil {
		logger.Error("invalid storage notification", "error", err)
		outcome := domain.NewFailure(domain.StageFetching, "invalid storage notification", err)
		return outcome, outcome.AsError()
	}
	if res.Records > 1 {
		logger.Warn("only the first record is processed", "records", res.Records, "key", res.Event.Key)
	}

	outcome := h.pipeline.Handle(ctx, res.Event)
	return outcome, outcome.AsError()
}

// Start hands the handler to the Lambda runtime. It does not return.
func Start(h *Handler) {
	lambda.Start(h.Invoke)
}
