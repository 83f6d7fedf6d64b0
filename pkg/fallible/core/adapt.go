package core

import "github.com/ib-77/streamext/pkg/fallible"

// Handler produces the substitute output for an element whose operation failed.
type Handler[In, Out any] func(in In, err error) Out

// Adapt converts op into a non-fallible operation. On success the value of op
// is returned; on failure handler is called once with the element and error.
// The behaviour on failure is fixed here and never decided per call.
func Adapt[In, Out any](op func(In) (Out, error), policy Policy, handler Handler[In, Out],
	opts ...Option) func(In) Out {

	fallible.OrPanic(op, "core.Adapt: operation must not be nil")
	fallible.OrPanic(handler, "core.Adapt: handler must not be nil")
	o := NewOptions(opts...)

	return func(in In) Out {
		out, err := op(in)
		if err == nil {
			return out
		}
		o.logFailure(policy, err)
		return handler(in, err)
	}
}

// Raise is the rethrow handler: it panics with an ExecutionError carrying err.
func Raise[In, Out any](in In, err error) Out {
	panic(fallible.NewExecutionError(in, err))
}

// Zero is the quiet handler for shapes whose zero value means "nothing":
// false for predicates, no-op for actions, an empty sequence for flat mappers.
func Zero[In, Out any](_ In, _ error) Out {
	var zero Out
	return zero
}

// Unit turns an action into an operation with an empty result.
func Unit[T any](action func(T) error) func(T) (struct{}, error) {
	fallible.OrPanic(action, "core.Unit: action must not be nil")
	return func(in T) (struct{}, error) {
		return struct{}{}, action(in)
	}
}
