// Package chain provides fluent wrappers around fp.Option, fp.Result and
// list.List, built on the plain functions of packages option, result and list.
//
// Methods cover steps that keep the wrapped type, so they read left to right:
//
//	n := chain.Ok[int, string](5).
//		Map(func(v int) int { return v + 1 }).
//		Then(func(v int) fp.Result[int, string] { return fp.Ok[int, string](v * 2) }).
//		Unwrap() // 12
//
// Go methods cannot declare type parameters, so steps that change the type
// are functions taking the wrapper first: MapOption, ThenOption,
// OptionToResult, MapResult, ThenResult, MapResultError, MapList,
// FilterMapList and ReduceList.
//
// Value ends a chain and returns the plain value.
package chain
