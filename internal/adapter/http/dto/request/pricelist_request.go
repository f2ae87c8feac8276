package request

import (
	"paintworks/internal/domain/entities"
)

// PriceOptionRequest is one editable price row. Value accepts a JSON
// number, a numeric string, or the sentinel "custom".
type PriceOptionRequest struct {
	Label string               `json:"label" binding:"required"`
	Value entities.OptionValue `json:"value"`
}

// PriceListRequest replaces the full override list of one pricing
// context.
type PriceListRequest struct {
	Options []PriceOptionRequest `json:"options" binding:"required"`
}

func (r PriceListRequest) ToOptions() []entities.PriceOption {
	options := make([]entities.PriceOption, len(r.Options))
	for i, opt := range r.Options {
		options[i] = entities.PriceOption{Label: opt.Label, Value: opt.Value}
	}
	return options
}
