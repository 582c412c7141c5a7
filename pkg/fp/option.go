package fp

import "fmt"

// Option holds either a value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:  v,
		isSome: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the contained value and true, or the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
