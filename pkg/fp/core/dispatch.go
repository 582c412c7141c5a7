package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Dispatch identifies one detached call. Done closes once the call has
// returned (or panicked); its outcome is never exposed.
type Dispatch struct {
	ID   uuid.UUID
	Done <-chan struct{}
}

// Detach runs fn on its own goroutine and returns immediately. Errors and
// panics from fn are swallowed and only reported at debug level to the
// logger carried by ctx. fn keeps ctx's values but not its cancellation.
func Detach(ctx context.Context, fn func(ctx context.Context) error) Dispatch {
	ctx = context.WithoutCancel(ctx)
	id := uuid.New()
	done := make(chan struct{})
	logger := Logger(ctx).With(
		slog.String("dispatch_id", id.String()),
		slog.String("dispatch", GetDispatchName(ctx, "detached")))

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logger.DebugContext(ctx, "detached call panicked",
					slog.String("panic", fmt.Sprint(r)))
			}
		}()

		if err := fn(ctx); err != nil {
			logger.DebugContext(ctx, "detached call failed",
				slog.String("error", err.Error()))
			return
		}
		logger.DebugContext(ctx, "detached call finished")
	}()

	return Dispatch{ID: id, Done: done}
}
