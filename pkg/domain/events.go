package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStageEnter EventType = "stage_enter"
	EventStageLeave EventType = "stage_leave"
	EventOutcome    EventType = "outcome"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp    time.Time `json:"timestamp"`
	Type         EventType `json:"type"`
	InvocationID string    `json:"invocation_id"`
	Key          string    `json:"key"`
}

// StageEvent represents entry into or exit from a pipeline stage.
type StageEvent struct {
	EventBase
	Stage    Stage         `json:"stage"`
	Duration time.Duration `json:"duration,omitempty"` // leave only
	Err      error         `json:"-"`                  // leave only, nil on success
}

// OutcomeEvent reports the terminal outcome of an invocation.
type OutcomeEvent struct {
	EventBase
	Outcome  Outcome       `json:"outcome"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for pipeline observability.
type LifecycleHooks struct {
	OnStageEnter func(context.Context, *StageEvent)
	OnStageLeave func(context.Context, *StageEvent)
	OnOutcome    func(context.Context, *OutcomeEvent)
}
