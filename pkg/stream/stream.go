package stream

import (
	"iter"

	"github.com/ib-77/streamext/pkg/fallible/core"
)

// Stream is a lazily evaluated, sequential sequence of T. A Stream built on a
// single-use source (FromChan, a one-shot iter.Seq) can be driven only once.
type Stream[T any] struct {
	seq iter.Seq[T]
}

// Seq returns the underlying sequence. Ranging over it outside a terminal
// operation lets a rethrow panic escape; wrap such loops in core.Catch.
func (s Stream[T]) Seq() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

// Filter keeps the values for which keep returns true.
func (s Stream[T]) Filter(keep func(T) bool) Stream[T] {
	seq := s.Seq()
	return Stream[T]{
		seq: func(yield func(T) bool) {
			for v := range seq {
				if keep(v) && !yield(v) {
					return
				}
			}
		},
	}
}

// Peek calls fn for every value as it flows through.
func (s Stream[T]) Peek(fn func(T)) Stream[T] {
	seq := s.Seq()
	return Stream[T]{
		seq: func(yield func(T) bool) {
			for v := range seq {
				fn(v)
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Limit stops after n values.
func (s Stream[T]) Limit(n int) Stream[T] {
	seq := s.Seq()
	return Stream[T]{
		seq: func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			i := 0
			for v := range seq {
				if !yield(v) {
					return
				}
				i++
				if i >= n {
					return
				}
			}
		},
	}
}

func Map[In, Out any](s Stream[In], fn func(In) Out) Stream[Out] {
	seq := s.Seq()
	return Stream[Out]{
		seq: func(yield func(Out) bool) {
			for v := range seq {
				if !yield(fn(v)) {
					return
				}
			}
		},
	}
}

// FlatMap replaces every value with the values of the sequence fn returns for
// it. A nil sequence counts as empty.
func FlatMap[In, Out any](s Stream[In], fn func(In) iter.Seq[Out]) Stream[Out] {
	seq := s.Seq()
	return Stream[Out]{
		seq: func(yield func(Out) bool) {
			for v := range seq {
				inner := fn(v)
				if inner == nil {
					continue
				}
				for out := range inner {
					if !yield(out) {
						return
					}
				}
			}
		},
	}
}

func (s Stream[T]) ForEach(fn func(T)) error {
	return core.Catch(func() {
		for v := range s.Seq() {
			fn(v)
		}
	})
}

// ForEachOrdered is ForEach; evaluation is always sequential and in order.
func (s Stream[T]) ForEachOrdered(fn func(T)) error {
	return s.ForEach(fn)
}

// AllMatch stops at the first value that does not match. An empty stream matches.
func (s Stream[T]) AllMatch(p func(T) bool) (bool, error) {
	return core.CatchValue(func() bool {
		for v := range s.Seq() {
			if !p(v) {
				return false
			}
		}
		return true
	})
}

// AnyMatch stops at the first value that matches.
func (s Stream[T]) AnyMatch(p func(T) bool) (bool, error) {
	return core.CatchValue(func() bool {
		for v := range s.Seq() {
			if p(v) {
				return true
			}
		}
		return false
	})
}

// NoneMatch stops at the first value that matches.
func (s Stream[T]) NoneMatch(p func(T) bool) (bool, error) {
	matched, err := s.AnyMatch(p)
	if err != nil {
		return false, err
	}
	return !matched, nil
}

func (s Stream[T]) First() (T, bool, error) {
	var (
		first T
		found bool
	)
	err := core.Catch(func() {
		for v := range s.Seq() {
			first, found = v, true
			break
		}
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return first, found, nil
}

func (s Stream[T]) Count() (int, error) {
	return core.CatchValue(func() int {
		n := 0
		for range s.Seq() {
			n++
		}
		return n
	})
}

// List drains the stream into a slice in encounter order. The slice is never
// nil when err is nil.
func (s Stream[T]) List() ([]T, error) {
	return core.CatchValue(func() []T {
		out := make([]T, 0)
		for v := range s.Seq() {
			out = append(out, v)
		}
		return out
	})
}

// List is s.List for call sites that end a chain of free functions.
func List[T any](s Stream[T]) ([]T, error) {
	return s.List()
}
