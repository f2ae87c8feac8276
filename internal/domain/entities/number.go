package entities

import (
	"math"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that tolerates the original persisted blobs,
// where some numeric fields (extra/paint costs, ledger amounts) were
// stored as JSON strings. Malformed input coerces to 0; unmarshaling
// never fails on bad numbers.
type FlexNumber float64

func (n FlexNumber) Float() float64 { return float64(n) }

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	*n = FlexNumber(ParseAmount(s))
	return nil
}

// ParseAmount parses a free-form numeric input, defaulting to 0 on
// failure. This is the engine-wide coercion policy: bad numbers are
// zeros, never errors.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// RoundCents rounds a dollar amount to cent precision.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
