/*
Package stream provides a lazy, sequential Stream[T] over iter.Seq and the
bindings that install fallible operations into its combinators.

Intermediate operations (Filter, Map, FlatMap, Peek, Limit) only describe the
pipeline; nothing runs until a terminal operation (ForEach, ForEachOrdered,
AllMatch, AnyMatch, NoneMatch, First, Count, List) drives it. Terminal
operations return an error: it is the *fallible.ExecutionError raised by an
operation adapted with the rethrow policy, and evaluation stops at the element
that raised it.

Every combinator that accepts an operation has three fallible forms:

	stream.FilterE(s, p)              // rethrow: stop at the first failure
	stream.FilterFallback(s, p, f)    // f(element, err) answers the failure
	stream.FilterQuiet(s, p)          // failure means "does not match"

Example:

	values, err := stream.MapE(stream.Of("1", "2", "x"), strconv.Atoi).List()
	if ee, ok := fallible.AsExecutionError(err); ok {
		log.Println("bad element:", ee.Element(), ee.Cause())
	}

The bindings only adapt the operation (see packages predicate, mapper and
action) and delegate to the plain combinator, so ordering, laziness and short
circuiting are exactly those of the plain combinator.
*/
package stream
