package entities

import (
	"strconv"
	"strings"
)

// CustomValue is the sentinel price meaning "prompt for manual entry".
// It never participates in merge or sum logic; selecting it flips the
// line item onto the custom-cost path.
const CustomValue = "custom"

// OptionValue is either a numeric unit price or the custom sentinel.
// The persisted form keeps numbers as JSON numbers and the sentinel as
// the string "custom", matching the blobs written by every prior
// version of the product.
type OptionValue string

func NumericValue(f float64) OptionValue {
	return OptionValue(strconv.FormatFloat(f, 'f', -1, 64))
}

func (v OptionValue) IsCustom() bool {
	return strings.EqualFold(strings.TrimSpace(string(v)), CustomValue)
}

// Amount returns the numeric unit price. The sentinel and malformed
// values coerce to 0.
func (v OptionValue) Amount() float64 {
	if v.IsCustom() {
		return 0
	}
	return ParseAmount(string(v))
}

func (v OptionValue) MarshalJSON() ([]byte, error) {
	if v.IsCustom() {
		return []byte(`"` + CustomValue + `"`), nil
	}
	return []byte(strconv.FormatFloat(v.Amount(), 'f', -1, 64)), nil
}

func (v *OptionValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if strings.EqualFold(s, CustomValue) {
		*v = CustomValue
		return nil
	}
	*v = NumericValue(ParseAmount(s))
	return nil
}

// PriceOption is a named unit price selectable for a line item.
// The label is the merge key.
type PriceOption struct {
	Label string      `json:"label"`
	Value OptionValue `json:"value"`
}

// MergePriceLists lays a persisted override list over a default list.
// Overrides matching a default label replace that entry's value in
// place (default ordering is preserved); unknown overrides are appended
// in their persisted order. Neither input is mutated.
func MergePriceLists(defaults, overrides []PriceOption) []PriceOption {
	merged := make([]PriceOption, len(defaults))
	copy(merged, defaults)

	index := make(map[string]int, len(merged))
	for i, opt := range merged {
		index[opt.Label] = i
	}

	for _, ov := range overrides {
		if i, ok := index[ov.Label]; ok {
			merged[i].Value = ov.Value
			continue
		}
		index[ov.Label] = len(merged)
		merged = append(merged, ov)
	}
	return merged
}

// UnitPrice looks up the numeric price for a label; unknown labels and
// the custom sentinel resolve to 0.
func UnitPrice(list []PriceOption, label string) float64 {
	for _, opt := range list {
		if opt.Label == label {
			return opt.Value.Amount()
		}
	}
	return 0
}

// SquareFootageLabel is the room label whose cost derives from measured
// area instead of a flat room price.
const SquareFootageLabel = "Square Footage"

// DefaultEstimateOptions is the built-in estimate price list. Values
// mirror the sheet the business has always shipped with.
func DefaultEstimateOptions() []PriceOption {
	return []PriceOption{
		{Label: "8ft ceiling walls trim and doors", Value: NumericValue(350)},
		{Label: "9ft ceiling walls trim and doors", Value: NumericValue(400)},
		{Label: "10ft ceiling walls trim and doors", Value: NumericValue(450)},
		{Label: "Vaulted ceiling", Value: NumericValue(600)},
		{Label: "8ft walls and ceilings", Value: NumericValue(275)},
		{Label: "9ft walls and ceilings", Value: NumericValue(325)},
		{Label: "10ft walls and ceilings", Value: NumericValue(385)},
		{Label: "8ft walls", Value: NumericValue(225)},
		{Label: "9ft walls", Value: NumericValue(275)},
		{Label: "10ft walls", Value: NumericValue(325)},
		{Label: "Just ceiling", Value: NumericValue(150)},
		{Label: "Just trim and doors", Value: NumericValue(125)},
		{Label: SquareFootageLabel, Value: NumericValue(3)},
	}
}

// DefaultJobOptions is the open-job worksheet price list: the estimate
// sheet plus the manual-entry sentinel.
func DefaultJobOptions() []PriceOption {
	return append(DefaultEstimateOptions(),
		PriceOption{Label: "Custom Cost", Value: CustomValue})
}

// DefaultInvoiceOptions is the built-in invoice price list.
func DefaultInvoiceOptions() []PriceOption {
	return []PriceOption{
		{Label: "8ft ceiling walls trim and doors", Value: NumericValue(350)},
		{Label: "9ft ceiling walls trim and doors", Value: NumericValue(400)},
		{Label: "10ft ceiling walls trim and doors", Value: NumericValue(450)},
		{Label: "Vaulted ceiling", Value: NumericValue(600)},
		{Label: "8ft walls and ceilings", Value: NumericValue(275)},
		{Label: "9ft walls and ceilings", Value: NumericValue(325)},
		{Label: "10ft walls and ceilings", Value: NumericValue(385)},
		{Label: "8ft walls", Value: NumericValue(225)},
		{Label: "9ft walls", Value: NumericValue(275)},
		{Label: "10ft walls", Value: NumericValue(325)},
		{Label: "Just ceiling", Value: NumericValue(150)},
		{Label: "Just trim and doors", Value: NumericValue(125)},
		{Label: "Custom Cost", Value: CustomValue},
	}
}
