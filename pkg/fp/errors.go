package fp

import "fmt"

const (
	DefaultNoneMessage  = "called Unwrap on None"
	DefaultErrorMessage = "called Unwrap on Error"
)

// UnwrapError is the panic value raised when a value is forced out of a
// None or an Error.
type UnwrapError struct {
	Message string
	// Cause is the Error payload, nil for None
	Cause any
}

func (e *UnwrapError) Error() string {
	return e.Message
}

// Unwrap exposes Cause to errors.Is and errors.As when it is an error.
func (e *UnwrapError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// PanicNone panics with an UnwrapError for a None.
func PanicNone(message ...string) {
	msg := DefaultNoneMessage
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	panic(&UnwrapError{Message: msg})
}

// PanicError panics with an UnwrapError carrying cause.
func PanicError(cause any, message ...string) {
	msg := fmt.Sprintf("%s: %v", DefaultErrorMessage, cause)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	panic(&UnwrapError{Message: msg, Cause: cause})
}
