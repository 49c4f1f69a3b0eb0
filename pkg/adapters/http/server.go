package http

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/paddison/lesolver/internal/logging"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/events"
)

// DefaultMaxEventSize bounds the notification body (1 MiB).
const DefaultMaxEventSize = 1 << 20

// Pipeline defines the interface of the event orchestrator.
type Pipeline interface {
	Handle(ctx context.Context, evt domain.StorageEvent) domain.Outcome
}

// ResultReader reads results the pipeline has stored.
type ResultReader interface {
	Result(ctx context.Context, key string) (string, error)
}

// Server implements the generated ServerInterface on top of the pipeline.
type Server struct {
	Pipeline     Pipeline
	Results      ResultReader
	Logger       *slog.Logger
	Metrics      http.Handler
	MaxEventSize int64
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithResults enables GET /results/{key}.
func WithResults(r ResultReader) Option {
	return func(s *Server) {
		s.Results = r
	}
}

// NewHandler creates the HTTP handler:
//
//	POST /events         storage notification in, Outcome JSON out
//	GET  /results/{key}  stored result (when configured)
//	GET  /healthz        liveness
//	GET  /openapi.json   API description
//	GET  /metrics        Prometheus (when configured)
func NewHandler(p Pipeline, opts ...Option) http.Handler {
	s := &Server{
		Pipeline:     p,
		Logger:       logging.NewNop(),
		MaxEventSize: DefaultMaxEventSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/openapi.json", s.spec)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeJSON(w, s.Logger, http.StatusBadRequest, Error{Message: err.Error()})
		},
	})
}

// PostEvents handles the POST /events request.
func (s *Server) PostEvents(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxEventSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.Logger.Warn("PostEvents: request body too large", "limit", tooLarge.Limit)
			writeJSON(w, s.Logger, http.StatusRequestEntityTooLarge, toAPIOutcome(domain.NewFailure(domain.StageFetching, "event payload too large", nil)))
			return
		}
		s.Logger.Warn("PostEvents: unreadable request body", "error", err)
		writeJSON(w, s.Logger, http.StatusBadRequest, toAPIOutcome(domain.NewFailure(domain.StageFetching, "unreadable request body", nil)))
		return
	}

	res, err := events.Decode(raw)
	if err != nil {
		s.Logger.Warn("PostEvents: invalid notification", "error", err, "request_id", middleware.GetReqID(r.Context()))
		msg := "invalid storage notification"
		if errors.Is(err, events.ErrMissingKey) {
			msg = "storage notification has no object key"
		}
		writeJSON(w, s.Logger, http.StatusBadRequest, toAPIOutcome(domain.NewFailure(domain.StageFetching, msg, nil)))
		return
	}
	if res.Records > 1 {
		s.Logger.Warn("PostEvents: only the first record is processed", "records", res.Records, "key", res.Event.Key)
	}

	outcome := s.Pipeline.Handle(r.Context(), res.Event)
	writeJSON(w, s.Logger, StatusFor(outcome), toAPIOutcome(outcome))
}

// GetResult handles the GET /results/{key} request.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request, key string) {
	if s.Results == nil {
		writeJSON(w, s.Logger, http.StatusNotImplemented, Error{Message: "results are not served"})
		return
	}

	result, err := s.Results.Result(r.Context(), key)
	switch {
	case errors.Is(err, domain.ErrObjectNotFound):
		writeJSON(w, s.Logger, http.StatusNotFound, Error{Message: "no result stored for " + key})
		return
	case err != nil:
		s.Logger.Error("GetResult: store read failed", "key", key, "error", err)
		writeJSON(w, s.Logger, http.StatusBadGateway, Error{Message: "object store read failed"})
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(result))
}

// GetHealthz handles the GET /healthz request.
func (s *Server) GetHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) spec(w http.ResponseWriter, r *http.Request) {
	data, err := rawSpec()
	if err != nil {
		s.Logger.Error("embedded API description is corrupt", "error", err)
		http.Error(w, "API description unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// StatusFor maps an outcome to an HTTP status code.
func StatusFor(o domain.Outcome) int {
	if o.Succeeded() {
		return http.StatusOK
	}
	switch o.Stage {
	case domain.StageFetching:
		if errors.Is(o.Err, domain.ErrObjectNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case domain.StageDecoding, domain.StageParsing:
		return http.StatusUnprocessableEntity
	case domain.StageStoring:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func toAPIOutcome(o domain.Outcome) Outcome {
	out := Outcome{
		Status:  OutcomeStatus(o.Status),
		Message: o.Message,
	}
	if o.Result != "" {
		out.Result = &o.Result
	}
	if o.Bucket != "" {
		out.Bucket = &o.Bucket
	}
	if o.Key != "" {
		out.Key = &o.Key
	}
	if o.Stage != "" {
		stage := OutcomeStage(o.Stage)
		out.Stage = &stage
	}
	if o.InvocationID != "" {
		out.InvocationId = &o.InvocationID
	}
	return out
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
