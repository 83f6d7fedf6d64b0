package stream

import (
	"iter"

	"github.com/ib-77/streamext/pkg/fallible"
	"github.com/ib-77/streamext/pkg/fallible/action"
	"github.com/ib-77/streamext/pkg/fallible/core"
	"github.com/ib-77/streamext/pkg/fallible/mapper"
	"github.com/ib-77/streamext/pkg/fallible/predicate"
)

// Filter

// FilterE keeps the values matching p. A failure of p is returned by the
// terminal operation as *fallible.ExecutionError.
func FilterE[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) Stream[T] {
	return s.Filter(predicate.Rethrow(p, opts...))
}

// FilterFallback keeps the values matching p, asking fallback when p fails.
func FilterFallback[T any](s Stream[T], p fallible.Predicate[T], fallback func(in T, err error) bool,
	opts ...core.Option) Stream[T] {
	return s.Filter(predicate.Fallback(p, fallback, opts...))
}

// FilterQuiet drops the values p fails on.
func FilterQuiet[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) Stream[T] {
	return s.Filter(predicate.Quiet(p, opts...))
}

// Map

func MapE[In, Out any](s Stream[In], m fallible.Mapper[In, Out], opts ...core.Option) Stream[Out] {
	return Map(s, mapper.Rethrow(m, opts...))
}

func MapFallback[In, Out any](s Stream[In], m fallible.Mapper[In, Out], fallback func(in In, err error) Out,
	opts ...core.Option) Stream[Out] {
	return Map(s, mapper.Fallback(m, fallback, opts...))
}

// MapQuiet maps the values m fails on to fallible.None.
func MapQuiet[In, Out any](s Stream[In], m fallible.Mapper[In, Out], opts ...core.Option) Stream[fallible.Optional[Out]] {
	return Map(s, mapper.Quiet(m, opts...))
}

// FlatMap

func FlatMapE[In, Out any](s Stream[In], m fallible.Mapper[In, iter.Seq[Out]], opts ...core.Option) Stream[Out] {
	return FlatMap(s, mapper.Rethrow(m, opts...))
}

func FlatMapFallback[In, Out any](s Stream[In], m fallible.Mapper[In, iter.Seq[Out]],
	fallback func(in In, err error) iter.Seq[Out], opts ...core.Option) Stream[Out] {
	return FlatMap(s, mapper.Fallback(m, fallback, opts...))
}

// FlatMapQuiet contributes nothing for the values m fails on.
func FlatMapQuiet[In, Out any](s Stream[In], m fallible.Mapper[In, iter.Seq[Out]], opts ...core.Option) Stream[Out] {
	return FlatMap(s, core.Adapt[In, iter.Seq[Out]](m, core.PolicyQuiet, core.Zero[In, iter.Seq[Out]], opts...))
}

// ForEach

func ForEachE[T any](s Stream[T], a fallible.Action[T], opts ...core.Option) error {
	return s.ForEach(action.Rethrow(a, opts...))
}

func ForEachFallback[T any](s Stream[T], a fallible.Action[T], fallback func(in T, err error),
	opts ...core.Option) error {
	return s.ForEach(action.Fallback(a, fallback, opts...))
}

func ForEachQuiet[T any](s Stream[T], a fallible.Action[T], opts ...core.Option) error {
	return s.ForEach(action.Quiet(a, opts...))
}

func ForEachOrderedE[T any](s Stream[T], a fallible.Action[T], opts ...core.Option) error {
	return s.ForEachOrdered(action.Rethrow(a, opts...))
}

func ForEachOrderedFallback[T any](s Stream[T], a fallible.Action[T], fallback func(in T, err error),
	opts ...core.Option) error {
	return s.ForEachOrdered(action.Fallback(a, fallback, opts...))
}

func ForEachOrderedQuiet[T any](s Stream[T], a fallible.Action[T], opts ...core.Option) error {
	return s.ForEachOrdered(action.Quiet(a, opts...))
}

// Matching

func AllMatchE[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) (bool, error) {
	return s.AllMatch(predicate.Rethrow(p, opts...))
}

func AllMatchFallback[T any](s Stream[T], p fallible.Predicate[T], fallback func(in T, err error) bool,
	opts ...core.Option) (bool, error) {
	return s.AllMatch(predicate.Fallback(p, fallback, opts...))
}

// AllMatchQuiet counts a failure as a mismatch, so it returns false.
func AllMatchQuiet[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) (bool, error) {
	return s.AllMatch(predicate.Quiet(p, opts...))
}

func AnyMatchE[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) (bool, error) {
	return s.AnyMatch(predicate.Rethrow(p, opts...))
}

func AnyMatchFallback[T any](s Stream[T], p fallible.Predicate[T], fallback func(in T, err error) bool,
	opts ...core.Option) (bool, error) {
	return s.AnyMatch(predicate.Fallback(p, fallback, opts...))
}

func AnyMatchQuiet[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) (bool, error) {
	return s.AnyMatch(predicate.Quiet(p, opts...))
}

func NoneMatchE[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) (bool, error) {
	return s.NoneMatch(predicate.Rethrow(p, opts...))
}

func NoneMatchFallback[T any](s Stream[T], p fallible.Predicate[T], fallback func(in T, err error) bool,
	opts ...core.Option) (bool, error) {
	return s.NoneMatch(predicate.Fallback(p, fallback, opts...))
}

func NoneMatchQuiet[T any](s Stream[T], p fallible.Predicate[T], opts ...core.Option) (bool, error) {
	return s.NoneMatch(predicate.Quiet(p, opts...))
}
