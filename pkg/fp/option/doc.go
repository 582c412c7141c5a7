// Package option contains the plain functions over fp.Option[T].
// Functions that take a callback or a value take the Option last.
//
// Highlights:
// - Some/None: construct fp.Option[T]
// - IsSome/IsNone: mutually exclusive predicates
// - Map/Then: transform or bind a Some, never calling back on None
// - Filter/Match: keep by predicate, or collapse to one value
// - UnwrapOr/Unwrap: extract, Unwrap panics with *fp.UnwrapError on None
// - ToResult/From/FromPtr: conversions
package option
