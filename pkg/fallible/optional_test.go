package fallible

import "testing"

func TestOptional_SomeAndNone(t *testing.T) {
	t.Parallel()
	some := Some(0)
	none := None[int]()

	if v, ok := some.Get(); !ok || v != 0 {
		t.Fatalf("expected Some(0), got %v %v", v, ok)
	}
	if _, ok := none.Get(); ok {
		t.Fatalf("expected None to be absent")
	}
	if !none.IsAbsent() || none.IsPresent() {
		t.Fatalf("unexpected presence flags for None")
	}
	if none.OrElse(7) != 7 || some.OrElse(7) != 0 {
		t.Fatalf("unexpected OrElse results")
	}
}

func TestOptional_NoneNeverEqualsPresentZero(t *testing.T) {
	t.Parallel()
	eq := func(a, b int) bool { return a == b }

	if None[int]().Equal(Some(0), eq) {
		t.Fatalf("None must not equal Some(zero)")
	}
	if None[int]() == Some(0) {
		t.Fatalf("None must not compare equal to Some(zero)")
	}
	if !None[int]().Equal(None[int](), eq) || !Some(3).Equal(Some(3), eq) {
		t.Fatalf("expected equal optionals to be equal")
	}
}

func TestOptional_String(t *testing.T) {
	t.Parallel()
	if Some("a").String() != "Some(a)" || None[string]().String() != "None" {
		t.Fatalf("unexpected String output")
	}
}
