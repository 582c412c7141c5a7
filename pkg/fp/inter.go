package fp

// ValueProvider is implemented by every container that may hold a value.
type ValueProvider[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
}

var (
	_ ValueProvider[int] = Option[int]{}
	_ ValueProvider[int] = Result[int, string]{}
)
