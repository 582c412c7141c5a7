package list

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/core"
)

// Error payloads returned by At.
const (
	NegativeIndexMessage = "Negative index"
	NotFoundMessage      = "Not found"
)

// List is a persistent singly linked list. The zero value is the empty list.
// Lists produced by Prepend share their tail with the original.
type List[T any] struct {
	first *node[T]
}

type node[T any] struct {
	head T
	tail *node[T]
	// number of elements from this node to the end
	size int
}

func Empty[T any]() List[T] {
	return List[T]{}
}

func Of[T any](values ...T) List[T] {
	return OfSlice(values)
}

func OfSlice[T any](values []T) List[T] {
	var first *node[T]
	for i := len(values) - 1; i >= 0; i-- {
		first = cons(values[i], first)
	}
	return List[T]{first: first}
}

// Collect builds a List from seq, keeping its order.
func Collect[T any](seq iter.Seq[T]) List[T] {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return OfSlice(values)
}

func ToSlice[T any](l List[T]) []T {
	out := make([]T, 0, l.Len())
	for n := l.first; n != nil; n = n.tail {
		out = append(out, n.head)
	}
	return out
}

func Length[T any](l List[T]) int {
	return l.Len()
}

func IsEmpty[T any](l List[T]) bool {
	return l.first == nil
}

func Head[T any](l List[T]) fp.Option[T] {
	if l.first == nil {
		return fp.None[T]()
	}
	return fp.Some(l.first.head)
}

// Tail returns Some of everything after the head, which is the empty list for
// a single element list, and None for the empty list.
func Tail[T any](l List[T]) fp.Option[List[T]] {
	if l.first == nil {
		return fp.None[List[T]]()
	}
	return fp.Some(List[T]{first: l.first.tail})
}

func Prepend[T any](value T, l List[T]) List[T] {
	return List[T]{first: cons(value, l.first)}
}

func Append[T any](value T, l List[T]) List[T] {
	return OfSlice(append(ToSlice(l), value))
}

func At[T any](index int, l List[T]) fp.Result[T, string] {
	if index < 0 {
		return fp.Error[T](NegativeIndexMessage)
	}
	i := 0
	for n := l.first; n != nil; n = n.tail {
		if i == index {
			return fp.Ok[T, string](n.head)
		}
		i++
	}
	return fp.Error[T](NotFoundMessage)
}

func Find[T any](predicate func(v T) bool, l List[T]) fp.Option[T] {
	for n := l.first; n != nil; n = n.tail {
		if predicate(n.head) {
			return fp.Some(n.head)
		}
	}
	return fp.None[T]()
}

func Map[T, U any](fn func(v T, index int) U, l List[T]) List[U] {
	out := make([]U, 0, l.Len())
	i := 0
	for n := l.first; n != nil; n = n.tail {
		out = append(out, fn(n.head, i))
		i++
	}
	return OfSlice(out)
}

func Filter[T any](predicate func(v T, index int) bool, l List[T]) List[T] {
	var out []T
	i := 0
	for n := l.first; n != nil; n = n.tail {
		if predicate(n.head, i) {
			out = append(out, n.head)
		}
		i++
	}
	return OfSlice(out)
}

// FilterMap keeps the unwrapped value of every Some that fn returns.
func FilterMap[T, U any](fn func(v T) fp.Option[U], l List[T]) List[U] {
	var out []U
	for n := l.first; n != nil; n = n.tail {
		if v, ok := fn(n.head).Get(); ok {
			out = append(out, v)
		}
	}
	return OfSlice(out)
}

// Reduce folds left to right; the empty list returns initial unchanged.
func Reduce[T, U any](fn func(acc U, v T, index int) U, initial U, l List[T]) U {
	acc := initial
	i := 0
	for n := l.first; n != nil; n = n.tail {
		acc = fn(acc, n.head, i)
		i++
	}
	return acc
}

func Reverse[T any](l List[T]) List[T] {
	var first *node[T]
	for n := l.first; n != nil; n = n.tail {
		first = cons(n.head, first)
	}
	return List[T]{first: first}
}

// ToChan streams the elements of l in order.
func ToChan[T any](ctx context.Context, l List[T]) <-chan T {
	return core.ToChanMany(ctx, ToSlice(l))
}

// FromChan collects ch until it closes or ctx is done.
func FromChan[T any](ctx context.Context, ch <-chan T) List[T] {
	return OfSlice(core.FromChanMany(ctx, ch))
}

func (l List[T]) Len() int {
	if l.first == nil {
		return 0
	}
	return l.first.size
}

// All yields index and element pairs from head to end.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.first; n != nil; n = n.tail {
			if !yield(i, n.head) {
				return
			}
			i++
		}
	}
}

func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first; n != nil; n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

func cons[T any](head T, tail *node[T]) *node[T] {
	size := 1
	if tail != nil {
		size += tail.size
	}
	return &node[T]{head: head, tail: tail, size: size}
}
