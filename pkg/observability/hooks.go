package observability

import (
	"context"
	"log/slog"

	"github.com/paddison/lesolver/pkg/domain"
)

// ComposeHooks returns hooks that call each of hs in order.
func ComposeHooks(hs ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(ctx context.Context, e *domain.StageEvent) {
			for _, h := range hs {
				if h.OnStageEnter != nil {
					h.OnStageEnter(ctx, e)
				}
			}
		},
		OnStageLeave: func(ctx context.Context, e *domain.StageEvent) {
			for _, h := range hs {
				if h.OnStageLeave != nil {
					h.OnStageLeave(ctx, e)
				}
			}
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			for _, h := range hs {
				if h.OnOutcome != nil {
					h.OnOutcome(ctx, e)
				}
			}
		},
	}
}

// DebugHooks logs stage timings at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageLeave: func(ctx context.Context, e *domain.StageEvent) {
			logger.Debug("stage_leave",
				"invocation_id", e.InvocationID,
				"stage", e.Stage,
				"duration", e.Duration,
				"failed", e.Err != nil,
			)
		},
	}
}
