package fallible

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// OrPanic panics with msg when f is nil.
func OrPanic[F any](f F, msg string) F {
	if IsNil(f) {
		panic(msg)
	}
	return f
}
