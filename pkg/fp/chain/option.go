package chain

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/option"
)

// Option wraps an fp.Option for fluent chaining. Every step returns a new
// wrapper; the wrapped value is never modified.
type Option[T any] struct {
	opt fp.Option[T]
}

func FromOption[T any](o fp.Option[T]) Option[T] {
	return Option[T]{opt: o}
}

func Some[T any](v T) Option[T] {
	return FromOption(option.Some(v))
}

func None[T any]() Option[T] {
	return FromOption(option.None[T]())
}

// Value ends the chain and returns the underlying fp.Option
func (c Option[T]) Value() fp.Option[T] {
	return c.opt
}

func (c Option[T]) IsSome() bool {
	return option.IsSome(c.opt)
}

func (c Option[T]) IsNone() bool {
	return option.IsNone(c.opt)
}

func (c Option[T]) Map(onSome func(v T) T) Option[T] {
	return FromOption(option.Map(onSome, c.opt))
}

func (c Option[T]) Then(onSome func(v T) fp.Option[T]) Option[T] {
	return FromOption(option.Then(onSome, c.opt))
}

func (c Option[T]) Filter(predicate func(v T) bool) Option[T] {
	return FromOption(option.Filter(predicate, c.opt))
}

func (c Option[T]) UnwrapOr(defaultV T) T {
	return option.UnwrapOr(c.opt, defaultV)
}

func (c Option[T]) Unwrap(message ...string) T {
	return option.Unwrap(c.opt, message...)
}

// MapOption chains a transformation that changes the value type
func MapOption[T, U any](c Option[T], onSome func(v T) U) Option[U] {
	return FromOption(option.Map(onSome, c.opt))
}

// ThenOption chains a function returning fp.Option[U]
func ThenOption[T, U any](c Option[T], onSome func(v T) fp.Option[U]) Option[U] {
	return FromOption(option.Then(onSome, c.opt))
}

// OptionToResult turns the chain into a Result chain, using err for None
func OptionToResult[T, E any](c Option[T], err E) Result[T, E] {
	return FromResult(option.ToResult(c.opt, err))
}
