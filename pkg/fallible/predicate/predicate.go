package predicate

import (
	"github.com/ib-77/streamext/pkg/fallible"
	"github.com/ib-77/streamext/pkg/fallible/core"
)

func Rethrow[T any](p fallible.Predicate[T], opts ...core.Option) func(T) bool {
	return core.Adapt[T, bool](p, core.PolicyRethrow, core.Raise[T, bool], opts...)
}

func Quiet[T any](p fallible.Predicate[T], opts ...core.Option) func(T) bool {
	return core.Adapt[T, bool](p, core.PolicyQuiet, core.Zero[T, bool], opts...)
}

// Fallback evaluates fallback(in, err) when p fails on in.
func Fallback[T any](p fallible.Predicate[T], fallback func(in T, err error) bool,
	opts ...core.Option) func(T) bool {
	return core.Adapt[T, bool](p, core.PolicyFallback, core.Handler[T, bool](fallback), opts...)
}
