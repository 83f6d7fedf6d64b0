package core

import "github.com/ib-77/streamext/pkg/fallible"

// Catch runs fn and returns the ExecutionError it raised, if any. Any other
// panic value is re-panicked unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ee, ok := r.(*fallible.ExecutionError)
			if !ok {
				panic(r)
			}
			err = ee
		}
	}()

	fn()
	return nil
}

// CatchValue is Catch for functions producing a value. On error the zero value
// is returned.
func CatchValue[T any](fn func() T) (T, error) {
	var out T
	err := Catch(func() {
		out = fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
