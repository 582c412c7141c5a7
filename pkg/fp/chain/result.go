package chain

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

// Result wraps an fp.Result for fluent chaining
type Result[T, E any] struct {
	res fp.Result[T, E]
}

func FromResult[T, E any](r fp.Result[T, E]) Result[T, E] {
	return Result[T, E]{res: r}
}

func Ok[T, E any](v T) Result[T, E] {
	return FromResult(result.Ok[T, E](v))
}

func Error[T, E any](e E) Result[T, E] {
	return FromResult(result.Error[T](e))
}

// Value ends the chain and returns the underlying fp.Result
func (c Result[T, E]) Value() fp.Result[T, E] {
	return c.res
}

func (c Result[T, E]) IsOk() bool {
	return result.IsOk(c.res)
}

func (c Result[T, E]) IsError() bool {
	return result.IsError(c.res)
}

func (c Result[T, E]) Map(onOk func(v T) T) Result[T, E] {
	return FromResult(result.Map(onOk, c.res))
}

func (c Result[T, E]) MapError(onError func(e E) E) Result[T, E] {
	return FromResult(result.MapError(onError, c.res))
}

func (c Result[T, E]) Then(onOk func(v T) fp.Result[T, E]) Result[T, E] {
	return FromResult(result.Then(onOk, c.res))
}

func (c Result[T, E]) UnwrapOr(defaultV T) T {
	return result.UnwrapOr(c.res, defaultV)
}

func (c Result[T, E]) Unwrap(message ...string) T {
	return result.Unwrap(c.res, message...)
}

func (c Result[T, E]) UnwrapError(defaultE E) E {
	return result.UnwrapError(c.res, defaultE)
}

// ToOption continues as an Option chain, dropping the error payload
func (c Result[T, E]) ToOption() Option[T] {
	return FromOption(result.ToOption(c.res))
}

// MapResult chains a transformation that changes the value type
func MapResult[T, U, E any](c Result[T, E], onOk func(v T) U) Result[U, E] {
	return FromResult(result.Map(onOk, c.res))
}

// ThenResult chains a function returning fp.Result[U, E]
func ThenResult[T, U, E any](c Result[T, E], onOk func(v T) fp.Result[U, E]) Result[U, E] {
	return FromResult(result.Then(onOk, c.res))
}

// MapResultError chains a transformation that changes the error type
func MapResultError[T, E, F any](c Result[T, E], onError func(e E) F) Result[T, F] {
	return FromResult(result.MapError(onError, c.res))
}
