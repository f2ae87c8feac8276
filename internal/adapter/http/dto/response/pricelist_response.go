package response

import (
	"paintworks/internal/domain/entities"
)

type PriceOptionResponse struct {
	Label string               `json:"label"`
	Value entities.OptionValue `json:"value" swaggertype:"string"`
}

// PriceListResponse is the effective (defaults plus overrides) price
// list of one pricing context.
type PriceListResponse struct {
	Context string                `json:"context"`
	Options []PriceOptionResponse `json:"options"`
}

func FromPriceList(context string, options []entities.PriceOption) PriceListResponse {
	out := make([]PriceOptionResponse, len(options))
	for i, opt := range options {
		out[i] = PriceOptionResponse{Label: opt.Label, Value: opt.Value}
	}
	return PriceListResponse{Context: context, Options: out}
}
