// Package fn contains generic combinators over plain functions.
//
// Common usage:
// - Curry: reflective, arity driven currying; Curry2/Curry3 for typed code
// - Compose/AndThen: left to right composition
// - Flip/Constant/Identity: small adapters
// - Tap/TapAsync: side effects that never affect the caller
// - TryCatch/TryCatchAsync/Await: turn errors and panics into fp.Result
package fn
