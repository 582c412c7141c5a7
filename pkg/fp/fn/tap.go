package fn

import (
	"context"

	"github.com/ib-77/fpkit/pkg/fp/core"
)

// Tap calls sideEffect with v and returns v. A panic inside sideEffect is
// recovered and dropped.
func Tap[T any](sideEffect func(v T), v T) T {
	func() {
		defer func() {
			_ = recover()
		}()
		sideEffect(v)
	}()
	return v
}

// TapAsync starts sideEffect on a detached goroutine and returns v without
// waiting. Its error or panic never reaches the caller; it is only logged
// at debug level to the logger configured on ctx.
func TapAsync[T any](ctx context.Context, sideEffect func(ctx context.Context, v T) error, v T) T {
	core.Detach(core.WithDispatchName(ctx, "tap"), func(ctx context.Context) error {
		return sideEffect(ctx, v)
	})
	return v
}
