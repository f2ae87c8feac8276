package entities

import (
	"testing"
)

func TestResolveCost(t *testing.T) {
	list := DefaultJobOptions()

	t.Run("fresh selection takes list price", func(t *testing.T) {
		item := ResolveCost(LineItem{Label: "8ft ceiling walls trim and doors"}, list)
		if item.Cost.Float() != 350 {
			t.Fatalf("got %v, want 350", item.Cost.Float())
		}
		if item.IsCustomCost {
			t.Fatalf("list-priced item must not be custom")
		}
	})

	t.Run("nonzero cost is locked", func(t *testing.T) {
		item := ResolveCost(LineItem{Label: "8ft ceiling walls trim and doors", Cost: 300}, list)
		if item.Cost.Float() != 300 {
			t.Fatalf("locked cost re-priced: got %v", item.Cost.Float())
		}
	})

	t.Run("custom cost kept verbatim", func(t *testing.T) {
		item := ResolveCost(LineItem{Label: "Whatever", Cost: 123.45, IsCustomCost: true}, list)
		if item.Cost.Float() != 123.45 {
			t.Fatalf("got %v, want 123.45", item.Cost.Float())
		}
	})

	t.Run("sentinel selection flips to custom", func(t *testing.T) {
		item := ResolveCost(LineItem{Label: "Custom Cost"}, list)
		if !item.IsCustomCost {
			t.Fatalf("expected custom-cost path")
		}
		if item.Cost != 0 {
			t.Fatalf("sentinel must not set a cost, got %v", item.Cost.Float())
		}
	})

	t.Run("square footage recomputes every time", func(t *testing.T) {
		item := ResolveCost(LineItem{Label: SquareFootageLabel, SquareFootage: 200}, list)
		if item.Cost.Float() != 600 {
			t.Fatalf("got %v, want 600", item.Cost.Float())
		}

		// Changing the measured area changes the cost even though a
		// cost was already stored.
		item.SquareFootage = 100
		item = ResolveCost(item, list)
		if item.Cost.Float() != 300 {
			t.Fatalf("got %v, want 300", item.Cost.Float())
		}
	})

	t.Run("square footage stays locked without a list price", func(t *testing.T) {
		// The invoice sheet has no "Square Footage" entry; the cost
		// carried over from the job must survive re-resolution.
		item := ResolveCost(
			LineItem{Label: SquareFootageLabel, SquareFootage: 200, Cost: 600},
			DefaultInvoiceOptions(),
		)
		if item.Cost.Float() != 600 {
			t.Fatalf("locked cost destroyed: got %v, want 600", item.Cost.Float())
		}
	})

	t.Run("unknown label leaves zero cost", func(t *testing.T) {
		item := ResolveCost(LineItem{Label: "never heard of it"}, list)
		if item.Cost != 0 || item.IsCustomCost {
			t.Fatalf("unexpected resolution: %+v", item)
		}
	})
}

func TestToggleProgress(t *testing.T) {
	room := LineItem{Label: "9ft walls"}
	room.ToggleProgress("cut in")
	room.ToggleProgress("rolled")
	if len(room.Progress) != 2 {
		t.Fatalf("expected 2 entries, got %v", room.Progress)
	}
	room.ToggleProgress("cut in")
	if len(room.Progress) != 1 || room.Progress[0] != "rolled" {
		t.Fatalf("toggle off failed: %v", room.Progress)
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := (LineItem{Label: "8ft walls", CustomLabel: "Master bedroom"}).DisplayLabel(); got != "Master bedroom" {
		t.Fatalf("got %q", got)
	}
	if got := (LineItem{Label: "8ft walls"}).DisplayLabel(); got != "8ft walls" {
		t.Fatalf("got %q", got)
	}
}
