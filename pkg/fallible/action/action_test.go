package action

import (
	"errors"
	"testing"

	"github.com/ib-77/streamext/pkg/fallible"
	"github.com/ib-77/streamext/pkg/fallible/core"
)

type recorder struct {
	seen []int
}

func (r *recorder) accept(in int) error {
	if in < 0 {
		return errors.New("negative")
	}
	r.seen = append(r.seen, in)
	return nil
}

func TestQuiet_FailureIsDiscarded(t *testing.T) {
	t.Parallel()
	r := &recorder{}
	a := Quiet(r.accept)

	for _, in := range []int{1, -2, 3} {
		a(in)
	}
	if len(r.seen) != 2 || r.seen[0] != 1 || r.seen[1] != 3 {
		t.Fatalf("expected [1 3], got %v", r.seen)
	}
}

func TestFallback_FailureUsesStrategy(t *testing.T) {
	t.Parallel()
	r := &recorder{}
	var failed []int
	a := Fallback(r.accept, func(in int, err error) {
		failed = append(failed, in)
	})

	for _, in := range []int{-1, 2, -3} {
		a(in)
	}
	if len(failed) != 2 || failed[0] != -1 || failed[1] != -3 {
		t.Fatalf("expected fallback for [-1 -3], got %v", failed)
	}
	if len(r.seen) != 1 || r.seen[0] != 2 {
		t.Fatalf("expected [2], got %v", r.seen)
	}
}

func TestRethrow_FailureRaises(t *testing.T) {
	t.Parallel()
	r := &recorder{}
	a := Rethrow(r.accept)

	if err := core.Catch(func() { a(5) }); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err := core.Catch(func() { a(-5) })
	ee, ok := fallible.AsExecutionError(err)
	if !ok || ee.Element() != -5 || ee.Cause().Error() != "negative" {
		t.Fatalf("expected ExecutionError(negative) on -5, got %v", err)
	}
}

func TestFallback_PanickingStrategyIsNotHidden(t *testing.T) {
	t.Parallel()
	a := Fallback(func(int) error { return errors.New("x") }, func(int, error) {
		panic("broken strategy")
	})

	defer func() {
		if r := recover(); r != "broken strategy" {
			t.Fatalf("expected strategy panic to propagate, got %v", r)
		}
	}()
	_ = core.Catch(func() { a(1) })
}

func TestNilArgumentsPanic(t *testing.T) {
	t.Parallel()
	for name, build := range map[string]func(){
		"rethrow":  func() { Rethrow[int](nil) },
		"quiet":    func() { Quiet[int](nil) },
		"fallback": func() { Fallback(func(int) error { return nil }, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", name)
				}
			}()
			build()
		}()
	}
}
