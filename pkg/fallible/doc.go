// Package fallible defines the shapes of operations that may fail with an
// error and the error kind produced when such a failure is propagated.
//
// It is the leaf of the module; the adapters live in subpackages:
// - Predicate/Mapper/Action: fallible operation shapes (func types)
// - Tester/Applier/Acceptor: single-method contracts the func types satisfy
// - ExecutionError: wrapped failure raised by the rethrow policy
// - Optional: absent-value marker produced by quiet mappers
//
// See predicate, mapper and action for the rethrow/quiet/fallback adapters and
// package stream for pipeline bindings.
package fallible
