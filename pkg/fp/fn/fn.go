package fn

// Composable is a function that can be extended with further steps.
// Steps run left to right: the output of one feeds the next.
type Composable[A, B any] func(A) B

func Compose[A, B any](f func(A) B) Composable[A, B] {
	return f
}

// Compose appends a step that keeps the output type.
func (c Composable[A, B]) Compose(next func(B) B) Composable[A, B] {
	return func(a A) B {
		return next(c(a))
	}
}

// AndThen appends a step that changes the output type.
func AndThen[A, B, C any](c Composable[A, B], next func(B) C) Composable[A, C] {
	return func(a A) C {
		return next(c(a))
	}
}

func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Constant returns a function that ignores its arguments and returns v.
func Constant[T any](v T) func(...any) T {
	return func(...any) T {
		return v
	}
}

func Identity[T any](v T) T {
	return v
}
