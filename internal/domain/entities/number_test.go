package entities

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"125.5", 125.5},
		{" 42 ", 42},
		{"-10", -10},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	t.Run("json number", func(t *testing.T) {
		var n FlexNumber
		if err := json.Unmarshal([]byte(`125.5`), &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Float() != 125.5 {
			t.Fatalf("got %v, want 125.5", n.Float())
		}
	})

	t.Run("numeric string", func(t *testing.T) {
		var n FlexNumber
		if err := json.Unmarshal([]byte(`"350"`), &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Float() != 350 {
			t.Fatalf("got %v, want 350", n.Float())
		}
	})

	t.Run("garbage coerces to zero", func(t *testing.T) {
		var n FlexNumber
		if err := json.Unmarshal([]byte(`"not a number"`), &n); err != nil {
			t.Fatalf("expected coercion, got error: %v", err)
		}
		if n.Float() != 0 {
			t.Fatalf("got %v, want 0", n.Float())
		}
	})
}

func TestFlexNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(FlexNumber(42.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "42.5" {
		t.Fatalf("got %s, want 42.5", b)
	}
}

func TestRoundCents(t *testing.T) {
	if got := RoundCents(94.249999999); got != 94.25 {
		t.Fatalf("got %v, want 94.25", got)
	}
	if got := RoundCents(10.006); got != 10.01 {
		t.Fatalf("got %v, want 10.01", got)
	}
}
