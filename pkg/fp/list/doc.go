// Package list provides List[T], a persistent singly linked list.
//
// Accessors that can miss return fp.Option or fp.Result instead of
// panicking: Head and Find return Option, Tail returns Option[List[T]],
// At returns Result[T, string] with "Negative index" or "Not found".
//
// Every operation that takes a callback or a value takes the list last,
// for example Map(fn, l), Prepend(v, l), At(i, l). Traversals are loops,
// so long lists never grow the stack.
package list
