package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/streamext/pkg/fallible"
	"github.com/ib-77/streamext/pkg/fallible/core"
)

func TestPolicies_AgreeWithoutFailure(t *testing.T) {
	t.Parallel()
	fallback := Fallback(strconv.Atoi, func(string, error) int { return -1 })
	rethrow := Rethrow(strconv.Atoi)
	quiet := Quiet(strconv.Atoi)

	for _, in := range []string{"0", "1", "-7", "42"} {
		want, _ := strconv.Atoi(in)
		if fallback(in) != want || rethrow(in) != want {
			t.Fatalf("policies disagree on %q", in)
		}
		if got, ok := quiet(in).Get(); !ok || got != want {
			t.Fatalf("expected Some(%d) for %q, got %v", want, in, quiet(in))
		}
	}
}

func TestQuiet_FailureIsNone(t *testing.T) {
	t.Parallel()
	q := Quiet(strconv.Atoi)

	out := q("zero")
	if out.IsPresent() {
		t.Fatalf("expected None, got %v", out)
	}
	if out == fallible.Some(0) {
		t.Fatalf("None must not equal a real zero result")
	}
}

func TestFallback_FailureUsesStrategy(t *testing.T) {
	t.Parallel()
	var seen error
	m := Fallback(strconv.Atoi, func(in string, err error) int {
		seen = err
		return len(in)
	})

	if got := m("four"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	var numErr *strconv.NumError
	if !errors.As(seen, &numErr) {
		t.Fatalf("expected the strategy to receive the original *strconv.NumError, got %T", seen)
	}
}

func TestRethrow_FailureRaisesOriginalCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("error")
	m := Rethrow(func(string) (string, error) { return "", cause })

	_, err := core.CatchValue(func() string { return m("one") })
	if fallible.CauseOf(err) != cause {
		t.Fatalf("expected cause %v, got %v", cause, err)
	}
	if fallible.CauseOf(err).Error() != "error" {
		t.Fatalf("expected cause message 'error', got %q", fallible.CauseOf(err).Error())
	}
}

func TestQuiet_NilMapperPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil mapper")
		}
	}()
	Quiet[string, int](nil)
}
