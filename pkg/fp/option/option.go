package option

import (
	"github.com/ib-77/fpkit/pkg/fp"
)

func Some[T any](v T) fp.Option[T] {
	return fp.Some(v)
}

func None[T any]() fp.Option[T] {
	return fp.None[T]()
}

func IsSome[T any](o fp.Option[T]) bool {
	return o.IsSome()
}

func IsNone[T any](o fp.Option[T]) bool {
	return o.IsNone()
}

// From converts anything that may hold a value into an Option.
func From[T any](p fp.ValueProvider[T]) fp.Option[T] {
	if v, ok := p.Get(); ok {
		return fp.Some(v)
	}
	return fp.None[T]()
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) fp.Option[T] {
	if p == nil {
		return fp.None[T]()
	}
	return fp.Some(*p)
}

func Map[T, U any](onSome func(v T) U, o fp.Option[T]) fp.Option[U] {
	if v, ok := o.Get(); ok {
		return fp.Some(onSome(v))
	}
	return fp.None[U]()
}

func Then[T, U any](onSome func(v T) fp.Option[U], o fp.Option[T]) fp.Option[U] {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return fp.None[U]()
}

func Filter[T any](predicate func(v T) bool, o fp.Option[T]) fp.Option[T] {
	if v, ok := o.Get(); ok && predicate(v) {
		return o
	}
	return fp.None[T]()
}

func Match[T, U any](onSome func(v T) U, onNone func() U, o fp.Option[T]) U {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

func UnwrapOr[T any](o fp.Option[T], defaultV T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return defaultV
}

// Unwrap returns the contained value and panics with *fp.UnwrapError on None.
// An optional message replaces the default panic message.
func Unwrap[T any](o fp.Option[T], message ...string) T {
	v, ok := o.Get()
	if !ok {
		fp.PanicNone(message...)
	}
	return v
}

func ToResult[T, E any](o fp.Option[T], err E) fp.Result[T, E] {
	if v, ok := o.Get(); ok {
		return fp.Ok[T, E](v)
	}
	return fp.Error[T](err)
}
