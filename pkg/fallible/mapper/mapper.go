package mapper

import (
	"github.com/ib-77/streamext/pkg/fallible"
	"github.com/ib-77/streamext/pkg/fallible/core"
)

// Rethrow panics with *fallible.ExecutionError when m fails.
func Rethrow[In, Out any](m fallible.Mapper[In, Out], opts ...core.Option) func(In) Out {
	return core.Adapt[In, Out](m, core.PolicyRethrow, core.Raise[In, Out], opts...)
}

// Quiet maps a failing element to fallible.None.
func Quiet[In, Out any](m fallible.Mapper[In, Out], opts ...core.Option) func(In) fallible.Optional[Out] {
	fallible.OrPanic(m, "mapper.Quiet: mapper must not be nil")
	present := func(in In) (fallible.Optional[Out], error) {
		out, err := m(in)
		if err != nil {
			return fallible.None[Out](), err
		}
		return fallible.Some(out), nil
	}
	return core.Adapt[In, fallible.Optional[Out]](present, core.PolicyQuiet, core.Zero[In, fallible.Optional[Out]], opts...)
}

func Fallback[In, Out any](m fallible.Mapper[In, Out], fallback func(in In, err error) Out,
	opts ...core.Option) func(In) Out {
	return core.Adapt[In, Out](m, core.PolicyFallback, core.Handler[In, Out](fallback), opts...)
}
