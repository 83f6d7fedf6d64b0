package action

import (
	"github.com/ib-77/streamext/pkg/fallible"
	"github.com/ib-77/streamext/pkg/fallible/core"
)

func Rethrow[T any](a fallible.Action[T], opts ...core.Option) func(T) {
	return discard(core.Adapt[T, struct{}](core.Unit(a), core.PolicyRethrow, core.Raise[T, struct{}], opts...))
}

func Quiet[T any](a fallible.Action[T], opts ...core.Option) func(T) {
	return discard(core.Adapt[T, struct{}](core.Unit(a), core.PolicyQuiet, core.Zero[T, struct{}], opts...))
}

// Fallback calls fallback(in, err) when a fails on in.
func Fallback[T any](a fallible.Action[T], fallback func(in T, err error), opts ...core.Option) func(T) {
	fallible.OrPanic(fallback, "action.Fallback: fallback must not be nil")
	handler := func(in T, err error) struct{} {
		fallback(in, err)
		return struct{}{}
	}
	return discard(core.Adapt[T, struct{}](core.Unit(a), core.PolicyFallback, handler, opts...))
}

func discard[T any](f func(T) struct{}) func(T) {
	return func(in T) {
		f(in)
	}
}
