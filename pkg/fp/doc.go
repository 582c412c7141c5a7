// Package fp defines the value types shared by the rest of fpkit:
// Option[T] and Result[T, E]. Both are small immutable structs with a
// variant flag; the zero Option is None and the zero Result is an Error.
//
// Operations over these types live in sibling packages:
// - option: Map/Then/UnwrapOr/Unwrap/ToResult over Option[T]
// - result: Map/MapError/Then/UnwrapOr/Unwrap/UnwrapError/ToOption over Result[T, E]
// - list: a persistent singly linked List[T] with Option/Result accessors
// - chain: fluent wrappers over all three
// - fn: curry, compose, flip, constant, identity, tap and tryCatch
//
// Unwrap is the only operation that panics; its panic value is *UnwrapError.
package fp
