// Package mapper adapts fallible.Mapper values into plain func(In) Out
// transformations accepted by map and flat-map combinators.
//
// Quiet cannot use the zero value of Out as "no result" because it may be a
// real result, so it maps into fallible.Optional[Out] and a failing element
// becomes fallible.None.
//
// A nil mapper or fallback panics when the adapter is built, never when it is
// called.
package mapper
