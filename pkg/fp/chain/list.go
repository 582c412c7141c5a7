package chain

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/list"
)

// List wraps a list.List for fluent chaining
type List[T any] struct {
	l list.List[T]
}

func FromList[T any](l list.List[T]) List[T] {
	return List[T]{l: l}
}

func FromSlice[T any](values []T) List[T] {
	return FromList(list.OfSlice(values))
}

// Value ends the chain and returns the underlying list
func (c List[T]) Value() list.List[T] {
	return c.l
}

func (c List[T]) ToSlice() []T {
	return list.ToSlice(c.l)
}

func (c List[T]) Length() int {
	return list.Length(c.l)
}

func (c List[T]) IsEmpty() bool {
	return list.IsEmpty(c.l)
}

func (c List[T]) Head() Option[T] {
	return FromOption(list.Head(c.l))
}

func (c List[T]) Tail() Option[list.List[T]] {
	return FromOption(list.Tail(c.l))
}

func (c List[T]) Prepend(v T) List[T] {
	return FromList(list.Prepend(v, c.l))
}

func (c List[T]) Append(v T) List[T] {
	return FromList(list.Append(v, c.l))
}

func (c List[T]) At(index int) Result[T, string] {
	return FromResult(list.At(index, c.l))
}

func (c List[T]) Find(predicate func(v T) bool) Option[T] {
	return FromOption(list.Find(predicate, c.l))
}

func (c List[T]) Map(fn func(v T, index int) T) List[T] {
	return FromList(list.Map(fn, c.l))
}

func (c List[T]) Filter(predicate func(v T, index int) bool) List[T] {
	return FromList(list.Filter(predicate, c.l))
}

func (c List[T]) FilterMap(fn func(v T) fp.Option[T]) List[T] {
	return FromList(list.FilterMap(fn, c.l))
}

func (c List[T]) Reduce(fn func(acc T, v T, index int) T, initial T) T {
	return list.Reduce(fn, initial, c.l)
}

// MapList chains a transformation that changes the element type
func MapList[T, U any](c List[T], fn func(v T, index int) U) List[U] {
	return FromList(list.Map(fn, c.l))
}

// FilterMapList chains a FilterMap that changes the element type
func FilterMapList[T, U any](c List[T], fn func(v T) fp.Option[U]) List[U] {
	return FromList(list.FilterMap(fn, c.l))
}

// ReduceList folds the chain into an accumulator of another type
func ReduceList[T, U any](c List[T], fn func(acc U, v T, index int) U, initial U) U {
	return list.Reduce(fn, initial, c.l)
}
