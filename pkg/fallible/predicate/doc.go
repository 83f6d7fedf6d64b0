// Package predicate adapts fallible.Predicate values into plain func(T) bool
// conditions accepted by filter and match combinators.
//
// - Rethrow: a failure panics with *fallible.ExecutionError (see core.Catch)
// - Quiet: a failure evaluates to false, the element does not match
// - Fallback: a failure is answered by a caller supplied strategy
//
// A nil predicate or fallback panics when the adapter is built, never when
// it is called.
package predicate
