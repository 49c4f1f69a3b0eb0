package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/paddison/lesolver/internal/logging"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/parser"
	"github.com/paddison/lesolver/pkg/ports"
)

// External failure messages. They never include collaborator error text.
const (
	MsgFetchFailed  = "could not read the uploaded file; your calculation wasn't saved"
	MsgDecodeFailed = "the uploaded file is not valid UTF-8 text"
	MsgReadFailed   = "the uploaded file could not be read; your calculation wasn't saved"
	MsgParseFailed  = "the uploaded file is not a valid linear system"
	MsgSolveFailed  = "the linear system could not be solved"
	MsgStoreFailed  = "the result was computed but your calculation wasn't saved"
)

// ErrMissingKey is returned when an event carries no object key.
var ErrMissingKey = errors.New("event has no object key")

// Orchestrator runs the fetch → decode → parse → solve → store pipeline for one event.
// It holds no per-invocation state and is safe for concurrent use.
type Orchestrator struct {
	cfg    Config
	store  ports.ObjectStore
	solver ports.Solver
	parser *parser.Parser
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	newID  func() string
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *Orchestrator) {
		o.hooks = hooks
	}
}

// WithIDGenerator replaces the invocation ID generator (default: random UUIDs).
func WithIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) {
		o.newID = fn
	}
}

// New creates an Orchestrator. Missing buckets are a startup error.
func New(cfg Config, store ports.ObjectStore, solver ports.Solver, opts ...Option) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("object store is required")
	}
	if solver == nil {
		return nil, errors.New("solver is required")
	}
	if cfg.MaxObjectSize == 0 {
		cfg.MaxObjectSize = DefaultMaxObjectSize
	}

	o := &Orchestrator{
		cfg:    cfg,
		store:  store,
		solver: solver,
		parser: parser.New(cfg.Strictness),
		logger: logging.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.newID == nil {
		o.newID = uuid.NewString
	}
	return o, nil
}

// Config returns the configuration the orchestrator was built with.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// invocation carries the identity of one Handle call through the stages.
type invocation struct {
	id     string
	key    string
	logger *slog.Logger
}

// Handle processes one storage event to completion and returns its single Outcome.
// It never panics and never returns an error; every failure becomes a failure Outcome.
func (o *Orchestrator) Handle(ctx context.Context, evt domain.StorageEvent) domain.Outcome {
	start := time.Now()
	inv := &invocation{id: o.newID(), key: evt.Key}
	inv.logger = o.logger.With("invocation_id", inv.id, "key", evt.Key)

	inv.logger.Info("handling storage event", "event", evt.EventName)
	if evt.Bucket != "" && evt.Bucket != o.cfg.ReadBucket {
		inv.logger.Warn("event bucket differs from configured read bucket",
			"event_bucket", evt.Bucket,
			"read_bucket", o.cfg.ReadBucket,
		)
	}

	outcome := o.run(ctx, inv)
	outcome.InvocationID = inv.id

	if outcome.Succeeded() {
		inv.logger.Info("invocation succeeded", "result", outcome.Result, "bucket", outcome.Bucket)
	} else {
		inv.logger.Error("invocation failed", "stage", outcome.Stage, "err", outcome.Err)
	}

	if o.hooks.OnOutcome != nil {
		o.hooks.OnOutcome(ctx, &domain.OutcomeEvent{
			EventBase: o.eventBase(domain.EventOutcome, inv),
			Outcome:   outcome,
			Duration:  time.Since(start),
		})
	}
	return outcome
}

func (o *Orchestrator) run(ctx context.Context, inv *invocation) domain.Outcome {
	// Fetching
	var body io.ReadCloser
	err := o.stage(ctx, inv, domain.StageFetching, func() error {
		if inv.key == "" {
			return ErrMissingKey
		}
		rc, err := o.store.Get(ctx, o.cfg.ReadBucket, inv.key)
		if err != nil {
			return fmt.Errorf("get %s/%s: %w", o.cfg.ReadBucket, inv.key, err)
		}
		body = rc
		return nil
	})
	if err != nil {
		return domain.NewFailure(domain.StageFetching, MsgFetchFailed, err)
	}

	// Decoding
	var text string
	err = o.stage(ctx, inv, domain.StageDecoding, func() error {
		defer body.Close()
		var err error
		text, err = decodeText(body, o.cfg.MaxObjectSize)
		return err
	})
	if err != nil {
		return domain.NewFailure(domain.StageDecoding, decodeMessage(err, o.cfg.MaxObjectSize), err)
	}

	// Parsing
	var system domain.LinearSystem
	err = o.stage(ctx, inv, domain.StageParsing, func() error {
		var err error
		system, err = o.parser.Parse(text)
		return err
	})
	if err != nil {
		return domain.NewFailure(domain.StageParsing, MsgParseFailed, err)
	}
	inv.logger.Debug("parsed linear system", "dimension", system.Dimension(), "strictness", o.cfg.Strictness.String())

	// Solving
	var solution domain.Solution
	err = o.stage(ctx, inv, domain.StageSolving, func() error {
		var err error
		solution, err = o.solver.Solve(ctx, system.Matrix, system.Vector)
		return err
	})
	if err != nil {
		return domain.NewFailure(domain.StageSolving, MsgSolveFailed, err)
	}
	result := solution.String()

	// Storing
	err = o.stage(ctx, inv, domain.StageStoring, func() error {
		if err := o.store.Put(ctx, o.cfg.WriteBucket, inv.key, []byte(result), domain.ContentTypeText); err != nil {
			return fmt.Errorf("put %s/%s: %w", o.cfg.WriteBucket, inv.key, err)
		}
		return nil
	})
	if err != nil {
		inv.logger.Warn("computed result was lost", "result", result)
		return domain.NewFailure(domain.StageStoring, MsgStoreFailed, err)
	}

	msg := fmt.Sprintf("Result was: %s, it was stored in bucket %s/%s", result, o.cfg.WriteBucket, inv.key)
	return domain.NewSuccess(msg, result, o.cfg.WriteBucket, inv.key)
}

// stage runs fn as one pipeline stage: it fires the enter/leave hooks, times it,
// logs the failure detail and turns a panic into an error.
func (o *Orchestrator) stage(ctx context.Context, inv *invocation, stage domain.Stage, fn func() error) (err error) {
	if o.hooks.OnStageEnter != nil {
		o.hooks.OnStageEnter(ctx, &domain.StageEvent{
			EventBase: o.eventBase(domain.EventStageEnter, inv),
			Stage:     stage,
		})
	}
	inv.logger.Debug("entering stage", "stage", stage)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			inv.logger.Error("stage panicked", "stage", stage, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in %s stage: %v", stage, r)
		}

		if err != nil {
			inv.logger.Warn("stage failed", "stage", stage, "err", err)
		}
		if o.hooks.OnStageLeave != nil {
			o.hooks.OnStageLeave(ctx, &domain.StageEvent{
				EventBase: o.eventBase(domain.EventStageLeave, inv),
				Stage:     stage,
				Duration:  time.Since(start),
				Err:       err,
			})
		}
	}()

	return fn()
}

func (o *Orchestrator) eventBase(t domain.EventType, inv *invocation) domain.EventBase {
	return domain.EventBase{
		Timestamp:    time.Now(),
		Type:         t,
		InvocationID: inv.id,
		Key:          inv.key,
	}
}

func decodeMessage(err error, limit int64) string {
	var utf8Err *InvalidUTF8Error
	switch {
	case errors.As(err, &utf8Err):
		return fmt.Sprintf("%s (invalid byte at offset %d)", MsgDecodeFailed, utf8Err.Offset)
	case errors.Is(err, ErrObjectTooLarge):
		return fmt.Sprintf("the uploaded file exceeds the maximum size of %d bytes", limit)
	default:
		return MsgReadFailed
	}
}
