package list

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	l := Empty[int]()
	if Length(l) != 0 || !IsEmpty(l) {
		t.Fatalf("expected empty list, got %v", l)
	}
	if got := ToSlice(l); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	var zero List[int]
	if !IsEmpty(zero) || zero != l {
		t.Fatalf("expected zero List to be empty")
	}
}

func TestMapWithIndex(t *testing.T) {
	t.Parallel()

	l := OfSlice([]int{1, 2, 3})
	out := Map(func(v, i int) int { return v*10 + i }, l)

	assert.Equal(t, []int{10, 21, 32}, ToSlice(out))
	assert.Equal(t, []int{1, 2, 3}, ToSlice(l), "source list must be untouched")
}

func TestHeadAndTail(t *testing.T) {
	t.Parallel()

	empty := OfSlice([]int{})
	assert.True(t, Head(empty).IsNone())
	assert.True(t, Tail(empty).IsNone())

	single := OfSlice([]int{5})
	assert.Equal(t, fp.Some(5), Head(single))
	tail := Tail(single)
	require.True(t, tail.IsSome(), "tail of a single element list must be Some")
	rest, _ := tail.Get()
	assert.True(t, IsEmpty(rest))

	many := Of("a", "b", "c")
	restMany, _ := Tail(many).Get()
	assert.Equal(t, []string{"b", "c"}, ToSlice(restMany))
}

func TestPrependSharesTail(t *testing.T) {
	t.Parallel()

	base := Of(2, 3)
	a := Prepend(1, base)
	b := Prepend(9, base)

	assert.Equal(t, []int{1, 2, 3}, ToSlice(a))
	assert.Equal(t, []int{9, 2, 3}, ToSlice(b))
	assert.Equal(t, []int{2, 3}, ToSlice(base))

	ta, _ := Tail(a).Get()
	tb, _ := Tail(b).Get()
	if ta != base || tb != base {
		t.Fatalf("expected prepended lists to share the original as tail")
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	base := Of(1, 2)
	out := Append(3, base)

	assert.Equal(t, []int{1, 2, 3}, ToSlice(out))
	assert.Equal(t, []int{1, 2}, ToSlice(base))
	assert.Equal(t, []int{7}, ToSlice(Append(7, Empty[int]())))
}

func TestAt(t *testing.T) {
	t.Parallel()

	l := Of("x", "y", "z")

	assert.Equal(t, fp.Ok[string, string]("x"), At(0, l))
	assert.Equal(t, fp.Ok[string, string]("z"), At(2, l))
	assert.Equal(t, fp.Error[string](NotFoundMessage), At(3, l))
	assert.Equal(t, fp.Error[string](NegativeIndexMessage), At(-1, l))

	for _, i := range []int{-1, 0, 1, 10} {
		if At(i, Empty[int]()).IsOk() {
			t.Fatalf("expected Error for index %d on empty list", i)
		}
	}
	assert.Equal(t, fp.Error[int](NegativeIndexMessage), At(-1, Empty[int]()))
}

func TestFind(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, fp.Some(4), Find(even, Of(1, 4, 6)))
	assert.True(t, Find(even, Of(1, 3)).IsNone())
	assert.True(t, Find(even, Empty[int]()).IsNone())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	l := Of(5, 6, 7, 8)
	oddIndex := Filter(func(_ int, i int) bool { return i%2 == 1 }, l)
	big := Filter(func(v int, _ int) bool { return v > 6 }, l)

	assert.Equal(t, []int{6, 8}, ToSlice(oddIndex))
	assert.Equal(t, []int{7, 8}, ToSlice(big))
	assert.True(t, IsEmpty(Filter(func(int, int) bool { return false }, l)))
}

func TestFilterMap(t *testing.T) {
	t.Parallel()

	doubleEven := func(v int) fp.Option[int] {
		if v%2 == 0 {
			return fp.Some(v * 2)
		}
		return fp.None[int]()
	}

	out := FilterMap(doubleEven, OfSlice([]int{1, 2, 3, 4}))
	assert.Equal(t, []int{4, 8}, ToSlice(out))
}

func TestReduce(t *testing.T) {
	t.Parallel()

	var indexes []int
	sum := Reduce(func(acc int, v int, i int) int {
		indexes = append(indexes, i)
		return acc + v
	}, 100, Of(1, 2, 3))

	assert.Equal(t, 106, sum)
	assert.Equal(t, []int{0, 1, 2}, indexes)

	joined := Reduce(func(acc string, v string, _ int) string { return acc + v }, "", Of("a", "b"))
	assert.Equal(t, "ab", joined)

	assert.Equal(t, "init", Reduce(func(acc string, v int, _ int) string { return "changed" }, "init", Empty[int]()))
}

func TestReverseAndIterators(t *testing.T) {
	t.Parallel()

	l := Of(1, 2, 3)
	assert.Equal(t, []int{3, 2, 1}, ToSlice(Reverse(l)))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.Values()))

	var pairs [][2]int
	for i, v := range l.All() {
		pairs = append(pairs, [2]int{i, v})
		if i == 1 {
			break
		}
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, pairs)

	assert.Equal(t, []int{1, 2, 3}, ToSlice(Collect(slices.Values([]int{1, 2, 3}))))
	assert.Equal(t, "[1, 2, 3]", l.String())
	assert.Equal(t, "[]", Empty[int]().String())
}

func TestChanRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	l := Of("a", "b", "c")
	back := FromChan(ctx, ToChan(ctx, l))

	assert.Equal(t, ToSlice(l), ToSlice(back))
}

func TestLongListDoesNotRecurse(t *testing.T) {
	t.Parallel()

	values := make([]int, 200_000)
	for i := range values {
		values[i] = i
	}
	l := OfSlice(values)

	assert.Equal(t, len(values), Length(l))
	sum := Reduce(func(acc int, v int, _ int) int { return acc + v }, 0, l)
	assert.Equal(t, (len(values)-1)*len(values)/2, sum)
	assert.Equal(t, len(values), len(ToSlice(l)))
}

func TestListLaws(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.Int()).Draw(t, "values")
		l := OfSlice(values)

		if got := ToSlice(l); !slices.Equal(got, values) {
			t.Fatalf("round trip changed the list: %v != %v", got, values)
		}
		if Length(l) != len(values) {
			t.Fatalf("expected length %d, got %d", len(values), Length(l))
		}
		if IsEmpty(l) != (len(values) == 0) {
			t.Fatalf("IsEmpty disagrees with length %d", len(values))
		}

		v := rapid.Int().Draw(t, "v")
		p := Prepend(v, l)
		if Length(p) != Length(l)+1 {
			t.Fatalf("prepend must grow length by one")
		}
		if Head(p) != fp.Some(v) {
			t.Fatalf("expected head Some(%d), got %v", v, Head(p))
		}

		if At(len(values), l) != fp.Error[int](NotFoundMessage) {
			t.Fatalf("index == length must be Not found")
		}
		if At(-1, l) != fp.Error[int](NegativeIndexMessage) {
			t.Fatalf("negative index must be Negative index")
		}
	})
}
