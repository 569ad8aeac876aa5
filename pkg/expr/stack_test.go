package expr

import (
	"errors"
	"testing"
)

func testStack() *Stack {
	return NewStack(Context{
		Values: map[string]any{
			"user": map[string]any{
				"name":    "ada",
				"lastTab": 2,
				"admin":   true,
			},
			"ratio":     1.5,
			"remember":  "true",
			"nothing":   nil,
			"flat.path": "flattened",
		},
		Extras: map[string]any{"locale": "en"},
	})
}

func TestStack_FindStringLiteralAndInterpolation(t *testing.T) {
	stack := testStack()

	cases := []struct {
		raw  string
		want string
	}{
		{raw: "[1,2]", want: "[1,2]"},
		{raw: "", want: ""},
		{raw: "%{user.name}", want: "ada"},
		{raw: "tab-%{user.name}-%{extras.locale}", want: "tab-ada-en"},
		{raw: "x%{missing}y", want: "xy"},
		{raw: "%{'quoted}'}", want: "quoted}"},
		{raw: "%{flat.path}", want: "flattened"},
	}
	for _, tc := range cases {
		got, found, err := stack.FindString(tc.raw)
		if err != nil {
			t.Fatalf("FindString(%q): %v", tc.raw, err)
		}
		if !found {
			t.Fatalf("FindString(%q): expected found", tc.raw)
		}
		if got != tc.want {
			t.Fatalf("FindString(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestStack_MissingBindingIsAbsent(t *testing.T) {
	stack := testStack()

	if _, found, err := stack.FindString("%{missing.value}"); err != nil || found {
		t.Fatalf("expected absent string, got found=%v err=%v", found, err)
	}
	if _, found, err := stack.FindBool("%{nothing}"); err != nil || found {
		t.Fatalf("expected absent bool for nil value, got found=%v err=%v", found, err)
	}
	if _, found, err := stack.FindInt("%{null}"); err != nil || found {
		t.Fatalf("expected absent int for null literal, got found=%v err=%v", found, err)
	}
}

func TestStack_FindBool(t *testing.T) {
	stack := testStack()

	cases := []struct {
		raw  string
		want bool
	}{
		{raw: "true", want: true},
		{raw: " false ", want: false},
		{raw: "%{user.admin}", want: true},
		{raw: "%{remember}", want: true},
		{raw: "%{user.lastTab == 2 && !user.admin}", want: false},
		{raw: "%{user.name == ada}", want: true},
		{raw: "%{false}", want: false},
		{raw: "user.admin", want: true},
		{raw: " remember ", want: true},
		{raw: "user.lastTab == 2", want: true},
	}
	for _, tc := range cases {
		got, found, err := stack.FindBool(tc.raw)
		if err != nil {
			t.Fatalf("FindBool(%q): %v", tc.raw, err)
		}
		if !found || got != tc.want {
			t.Fatalf("FindBool(%q) = %v (found=%v), want %v", tc.raw, got, found, tc.want)
		}
	}
}

func TestStack_FindInt(t *testing.T) {
	stack := testStack()

	cases := []struct {
		raw  string
		want int
	}{
		{raw: "1", want: 1},
		{raw: " 0 ", want: 0},
		{raw: "%{user.lastTab}", want: 2},
		{raw: "%{-3}", want: -3},
		{raw: "user.lastTab", want: 2},
		{raw: " user.lastTab ", want: 2},
	}
	for _, tc := range cases {
		got, found, err := stack.FindInt(tc.raw)
		if err != nil {
			t.Fatalf("FindInt(%q): %v", tc.raw, err)
		}
		if !found || got != tc.want {
			t.Fatalf("FindInt(%q) = %d (found=%v), want %d", tc.raw, got, found, tc.want)
		}
	}
}

func TestStack_NotCoercible(t *testing.T) {
	stack := testStack()

	if _, _, err := stack.FindBool("yes please"); !errors.Is(err, ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible for bool literal, got %v", err)
	}
	if _, _, err := stack.FindInt("first"); !errors.Is(err, ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible for int literal, got %v", err)
	}
	if _, _, err := stack.FindBool("missing.flag"); !errors.Is(err, ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible for unresolved bare path, got %v", err)
	}
	if _, _, err := stack.FindInt("ratio"); !errors.Is(err, ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible for bare fractional value, got %v", err)
	}
	if _, _, err := stack.FindInt("%{ratio}"); !errors.Is(err, ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible for fractional value, got %v", err)
	}
	if _, _, err := stack.FindInt("4294967296"); !errors.Is(err, ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible for out-of-range value, got %v", err)
	}
}

func TestStack_SyntaxErrors(t *testing.T) {
	stack := testStack()

	if _, _, err := stack.FindString("tab-%{user.name"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for unterminated binding, got %v", err)
	}
	if _, _, err := stack.FindBool("%{}"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for empty binding, got %v", err)
	}
	if _, _, err := stack.FindBool("%{a = b}"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax for malformed rule, got %v", err)
	}
}
