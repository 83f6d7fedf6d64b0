package fallible

import "fmt"

// Optional holds a value or marks its absence.
type Optional[T any] struct {
	value   T
	present bool
}

// Some holds a present value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None marks an absent value, e.g. the result of a quiet mapper that failed
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports a value
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsAbsent reports no value
func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// OrElse returns the value if present, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Equal never reports an absent Optional equal to a present one.
func (o Optional[T]) Equal(other Optional[T], eq func(a, b T) bool) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return eq(o.value, other.value)
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
