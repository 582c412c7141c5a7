// Package result contains single-value, synchronous primitives over
// fp.Result[T, E]. Callback-taking functions take the Result last.
//
// Highlights:
// - Ok/Error/FromPair: construct fp.Result[T, E]
// - Map/MapError: transform one side, leaving the other untouched
// - Then: bind, short-circuiting on Error
// - Match: reduce to a concrete value via ok/error handlers
// - UnwrapOr/Unwrap/UnwrapError: extract either side
// - ToOption: drop the error payload
package result
