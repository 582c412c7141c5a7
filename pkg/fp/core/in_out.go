package core

import (
	"context"
)

// ToChanMany streams values in order and closes the channel afterwards, or
// earlier when ctx is done.
func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
