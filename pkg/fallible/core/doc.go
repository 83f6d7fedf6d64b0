// Package core contains the single shape-polymorphic adapter behind the
// predicate, mapper and action packages, the handlers shared by the policies,
// and the helpers that turn a raised ExecutionError back into an error value.
// It does not know about any particular shape; the shape packages fix Out.
package core
