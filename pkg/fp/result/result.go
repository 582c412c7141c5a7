package result

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/option"
)

func Ok[T, E any](v T) fp.Result[T, E] {
	return fp.Ok[T, E](v)
}

func Error[T, E any](e E) fp.Result[T, E] {
	return fp.Error[T](e)
}

// FromPair turns a Go style (value, error) return into a Result.
func FromPair[T any](v T, err error) fp.Result[T, error] {
	if err != nil {
		return fp.Error[T](err)
	}
	return fp.Ok[T, error](v)
}

func IsOk[T, E any](r fp.Result[T, E]) bool {
	return r.IsOk()
}

func IsError[T, E any](r fp.Result[T, E]) bool {
	return r.IsError()
}

func Map[T, U, E any](onOk func(v T) U, r fp.Result[T, E]) fp.Result[U, E] {
	if v, ok := r.Get(); ok {
		return fp.Ok[U, E](onOk(v))
	}
	e, _ := r.GetError()
	return fp.Error[U](e)
}

func MapError[T, E, F any](onError func(e E) F, r fp.Result[T, E]) fp.Result[T, F] {
	if e, isErr := r.GetError(); isErr {
		return fp.Error[T](onError(e))
	}
	v, _ := r.Get()
	return fp.Ok[T, F](v)
}

func Then[T, U, E any](onOk func(v T) fp.Result[U, E], r fp.Result[T, E]) fp.Result[U, E] {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetError()
	return fp.Error[U](e)
}

func Match[T, E, U any](onOk func(v T) U, onError func(e E) U, r fp.Result[T, E]) U {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetError()
	return onError(e)
}

func UnwrapOr[T, E any](r fp.Result[T, E], defaultV T) T {
	if v, ok := r.Get(); ok {
		return v
	}
	return defaultV
}

// Unwrap returns the success value. On Error it panics with *fp.UnwrapError
// whose Cause is the error payload.
func Unwrap[T, E any](r fp.Result[T, E], message ...string) T {
	if e, isErr := r.GetError(); isErr {
		fp.PanicError(e, message...)
	}
	v, _ := r.Get()
	return v
}

func UnwrapError[T, E any](r fp.Result[T, E], defaultE E) E {
	if e, isErr := r.GetError(); isErr {
		return e
	}
	return defaultE
}

// ToOption keeps the success value and discards any error payload.
func ToOption[T, E any](r fp.Result[T, E]) fp.Option[T] {
	return option.From[T](r)
}
