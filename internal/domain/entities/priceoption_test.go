package entities

import (
	"encoding/json"
	"testing"
)

func TestMergePriceLists(t *testing.T) {
	t.Run("override replaces in place", func(t *testing.T) {
		defaults := []PriceOption{
			{Label: "A", Value: NumericValue(100)},
			{Label: "B", Value: NumericValue(200)},
		}
		overrides := []PriceOption{{Label: "B", Value: NumericValue(250)}}

		merged := MergePriceLists(defaults, overrides)
		if len(merged) != 2 {
			t.Fatalf("expected 2 options, got %d", len(merged))
		}
		if merged[0].Label != "A" || merged[0].Value.Amount() != 100 {
			t.Fatalf("default A disturbed: %+v", merged[0])
		}
		if merged[1].Label != "B" || merged[1].Value.Amount() != 250 {
			t.Fatalf("override not applied in place: %+v", merged[1])
		}
	})

	t.Run("unknown overrides append in order", func(t *testing.T) {
		defaults := []PriceOption{{Label: "A", Value: NumericValue(100)}}
		overrides := []PriceOption{
			{Label: "X", Value: NumericValue(10)},
			{Label: "Y", Value: NumericValue(20)},
		}

		merged := MergePriceLists(defaults, overrides)
		if len(merged) != 3 {
			t.Fatalf("expected 3 options, got %d", len(merged))
		}
		if merged[1].Label != "X" || merged[2].Label != "Y" {
			t.Fatalf("append order wrong: %+v", merged)
		}
	})

	t.Run("inputs not mutated", func(t *testing.T) {
		defaults := []PriceOption{{Label: "A", Value: NumericValue(100)}}
		overrides := []PriceOption{{Label: "A", Value: NumericValue(999)}}

		_ = MergePriceLists(defaults, overrides)
		if defaults[0].Value.Amount() != 100 {
			t.Fatalf("defaults mutated: %+v", defaults[0])
		}
	})

	t.Run("empty overrides yield defaults", func(t *testing.T) {
		defaults := DefaultEstimateOptions()
		merged := MergePriceLists(defaults, nil)
		if len(merged) != len(defaults) {
			t.Fatalf("expected %d options, got %d", len(defaults), len(merged))
		}
	})
}

func TestOptionValue_Sentinel(t *testing.T) {
	v := OptionValue(CustomValue)
	if !v.IsCustom() {
		t.Fatalf("expected custom sentinel")
	}
	if v.Amount() != 0 {
		t.Fatalf("sentinel must not carry an amount")
	}
}

func TestOptionValue_JSONRoundTrip(t *testing.T) {
	t.Run("number stays a number", func(t *testing.T) {
		b, err := json.Marshal(PriceOption{Label: "A", Value: NumericValue(350)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `{"label":"A","value":350}` {
			t.Fatalf("unexpected encoding: %s", b)
		}
	})

	t.Run("sentinel stays a string", func(t *testing.T) {
		b, err := json.Marshal(PriceOption{Label: "Custom Cost", Value: CustomValue})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `{"label":"Custom Cost","value":"custom"}` {
			t.Fatalf("unexpected encoding: %s", b)
		}
	})

	t.Run("string price decodes", func(t *testing.T) {
		var opt PriceOption
		if err := json.Unmarshal([]byte(`{"label":"A","value":"275"}`), &opt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opt.Value.Amount() != 275 {
			t.Fatalf("got %v, want 275", opt.Value.Amount())
		}
	})
}

func TestUnitPrice(t *testing.T) {
	list := DefaultEstimateOptions()
	if got := UnitPrice(list, SquareFootageLabel); got != 3 {
		t.Fatalf("square footage unit price = %v, want 3", got)
	}
	if got := UnitPrice(list, "no such label"); got != 0 {
		t.Fatalf("unknown label = %v, want 0", got)
	}
}

func TestDefaultJobOptions_HasCustomSentinel(t *testing.T) {
	list := DefaultJobOptions()
	last := list[len(list)-1]
	if last.Label != "Custom Cost" || !last.Value.IsCustom() {
		t.Fatalf("expected trailing Custom Cost sentinel, got %+v", last)
	}
}
