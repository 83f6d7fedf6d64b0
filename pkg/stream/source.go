package stream

import "iter"

func Of[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

func FromSlice[T any](values []T) Stream[T] {
	return Stream[T]{
		seq: func(yield func(T) bool) {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromSeq wraps seq. A nil seq yields nothing.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return Stream[T]{seq: seq}
}

// FromChan yields values received from ch until it is closed. Stopping the
// stream early leaves the remaining values in ch.
func FromChan[T any](ch <-chan T) Stream[T] {
	return Stream[T]{
		seq: func(yield func(T) bool) {
			for v := range ch {
				if !yield(v) {
					return
				}
			}
		},
	}
}

func Empty[T any]() Stream[T] {
	return Stream[T]{}
}
