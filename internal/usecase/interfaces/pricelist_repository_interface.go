package interfaces

import (
	"context"

	"paintworks/internal/domain/entities"
)

// IPriceListRepository abstracts the persisted price-list override
// layers. Each pricing context (estimate, job worksheet, invoice) owns
// one override key; a missing key loads as an empty list.

type IPriceListRepository interface {
	LoadOptions(ctx context.Context, key string) ([]entities.PriceOption, error)
	SaveOptions(ctx context.Context, key string, options []entities.PriceOption) error
}
