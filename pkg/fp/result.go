package fp

import "fmt"

// Result holds either a success value (Ok) or an error payload (Error).
// The zero value is an Error carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	isOk  bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		isOk:  true,
	}
}

func Error[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:  e,
		isOk: false,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsError() bool {
	return !r.isOk
}

// Get returns the success value and true, or the zero value and false for Error.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isOk
}

// GetError returns the error payload and true, or the zero value and false for Ok.
func (r Result[T, E]) GetError() (E, bool) {
	return r.err, !r.isOk
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.err)
}
