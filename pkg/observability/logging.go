package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/sluice/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log every solve at Info and
// every layer at Debug.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLayer: func(ctx context.Context, e *domain.LayerEvent) {
			logger.DebugContext(ctx, "layer",
				"elapsed", e.Elapsed,
				"frontier", e.Frontier,
				"best", e.Best,
			)
		},
		OnComplete: func(ctx context.Context, e *domain.SolveEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "solve failed",
					"start", e.Request.Start,
					"horizon", e.Request.Horizon,
					"error", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "solve complete",
				"start", e.Request.Start,
				"horizon", e.Request.Horizon,
				"agents", e.Request.Agents,
				"best", e.Result.Best,
				"exact", e.Result.Exact,
				"duration", e.Result.Duration,
			)
		},
	}
}
