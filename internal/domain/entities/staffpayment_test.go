package entities

import (
	"math"
	"testing"
)

func TestStaffPayment_ComputeTotal(t *testing.T) {
	t.Run("with gst", func(t *testing.T) {
		p := StaffPayment{Amount: 1000, GST: true}
		p.ComputeTotal()
		if math.Abs(p.Total-1130) > 1e-9 {
			t.Fatalf("total = %v, want 1130", p.Total)
		}
	})

	t.Run("without gst", func(t *testing.T) {
		p := StaffPayment{Amount: 1000}
		p.ComputeTotal()
		if p.Total != 1000 {
			t.Fatalf("total = %v, want 1000", p.Total)
		}
	})
}
