package fallible

// Tester evaluates a condition that may fail.
type Tester[T any] interface {
	// Test reports whether in matches
	Test(in T) (bool, error)
}

// Applier transforms a value and may fail.
type Applier[In, Out any] interface {
	// Apply returns the transformed value
	Apply(in In) (Out, error)
}

// Acceptor performs a side effect on a value and may fail.
type Acceptor[T any] interface {
	// Accept consumes in
	Accept(in T) error
}

// Predicate is a condition over T that may fail.
type Predicate[T any] func(in T) (bool, error)

// Mapper is a transformation from In to Out that may fail.
type Mapper[In, Out any] func(in In) (Out, error)

// Action is a side effect over T that may fail.
type Action[T any] func(in T) error

func (p Predicate[T]) Test(in T) (bool, error) {
	return p(in)
}

func (m Mapper[In, Out]) Apply(in In) (Out, error) {
	return m(in)
}

func (a Action[T]) Accept(in T) error {
	return a(in)
}

// PredicateOf returns the Predicate backed by t.
func PredicateOf[T any](t Tester[T]) Predicate[T] {
	return t.Test
}

// MapperOf returns the Mapper backed by a.
func MapperOf[In, Out any](a Applier[In, Out]) Mapper[In, Out] {
	return a.Apply
}

// ActionOf returns the Action backed by a.
func ActionOf[T any](a Acceptor[T]) Action[T] {
	return a.Accept
}
