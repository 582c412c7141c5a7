package fn

import (
	"fmt"
	"reflect"
)

// Curried accepts arguments incrementally. It returns another Curried until
// enough arguments have accumulated, then the result of the wrapped function.
type Curried func(args ...any) any

// Curry wraps any function value. Once the accumulated argument count reaches
// the declared arity (the fixed parameters for a variadic func) the function
// is invoked with all arguments in the order supplied. Arguments beyond a
// fixed arity are dropped; nil arguments become the parameter's zero value.
// An argument whose type does not fit its parameter makes the final call
// panic instead of being coerced.
//
// A function with no results yields nil, one result is returned as is, and
// several results are returned as []any. Curry panics when f is not a func.
func Curry(f any) Curried {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("fn: Curry expects a func, got %T", f))
	}
	return curried(fv, nil)
}

func curried(fv reflect.Value, acc []any) Curried {
	return func(args ...any) any {
		all := make([]any, 0, len(acc)+len(args))
		all = append(all, acc...)
		all = append(all, args...)

		if len(all) >= arity(fv.Type()) {
			return invoke(fv, all)
		}
		return curried(fv, all)
	}
}

func arity(t reflect.Type) int {
	if t.IsVariadic() {
		return t.NumIn() - 1
	}
	return t.NumIn()
}

func invoke(fv reflect.Value, args []any) any {
	t := fv.Type()
	if !t.IsVariadic() && len(args) > t.NumIn() {
		args = args[:t.NumIn()]
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = argValue(i, paramType(t, i), arg)
	}

	out := fv.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		res := make([]any, len(out))
		for i, o := range out {
			res[i] = o.Interface()
		}
		return res
	}
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

// argValue never coerces: an argument must be assignable to its parameter,
// or share the parameter's underlying type (named types over the same base).
func argValue(i int, pt reflect.Type, arg any) reflect.Value {
	if arg == nil {
		return reflect.Zero(pt)
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(pt):
		return v
	case sameUnderlying(v.Type(), pt):
		return v.Convert(pt)
	}
	panic(fmt.Sprintf("fn: Curry argument %d: %T is not assignable to %s", i, arg, pt))
}

func sameUnderlying(a, b reflect.Type) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case reflect.Struct, reflect.Array, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Pointer, reflect.Interface:
		return false
	}
	// a basic kind fixes the underlying type
	return true
}

// Curry2 is the statically typed form of Curry for binary functions.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}
