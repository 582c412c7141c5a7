package fn

import (
	"context"
	"fmt"

	"github.com/ib-77/fpkit/pkg/fp"
)

// NoResultMessage is the Error payload of Await on a channel closed empty.
const NoResultMessage = "no result"

// TryCatch runs fn and wraps its outcome: Ok for a value, Error with the
// error text for a returned error or a panic. andFinally, when not nil, runs
// exactly once after the attempt on every path.
func TryCatch[T any](fn func() (T, error), andFinally func()) (res fp.Result[T, string]) {
	if andFinally != nil {
		defer andFinally()
	}
	defer func() {
		if r := recover(); r != nil {
			res = fp.Error[T](fmt.Sprint(r))
		}
	}()

	v, err := fn()
	if err != nil {
		return fp.Error[T](err.Error())
	}
	return fp.Ok[T, string](v)
}

// TryCatchAsync is the asynchronous form of TryCatch. The returned channel
// yields exactly one Result and is then closed. andFinally runs once fn has
// settled. If ctx is done before fn settles, the channel yields an Error
// with ctx's error text instead.
func TryCatchAsync[T any](ctx context.Context,
	fn func(ctx context.Context) (T, error), andFinally func()) <-chan fp.Result[T, string] {

	ch := make(chan fp.Result[T, string], 1)
	out := make(chan fp.Result[T, string], 1)

	go func() {
		defer close(ch)
		ch <- TryCatch(func() (T, error) {
			return fn(ctx)
		}, andFinally)
	}()

	go func() {
		defer close(out)
		out <- Await(ctx, ch)
	}()

	return out
}

// Await blocks until ch yields, ch closes, or ctx is done. A result already
// waiting on ch wins over a cancelled ctx.
func Await[T any](ctx context.Context, ch <-chan fp.Result[T, string]) fp.Result[T, string] {
	select {
	case r, ok := <-ch:
		return received(r, ok)
	case <-ctx.Done():
		select {
		case r, ok := <-ch:
			return received(r, ok)
		default:
			return fp.Error[T](ctx.Err().Error())
		}
	}
}

func received[T any](r fp.Result[T, string], ok bool) fp.Result[T, string] {
	if !ok {
		return fp.Error[T](NoResultMessage)
	}
	return r
}
