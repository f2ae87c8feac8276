package usecase

import (
	"context"
	"errors"

	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase/interfaces"
)

var ErrUnknownPricingContext = errors.New("unknown pricing context")

// PricingContext names one of the editable price lists. Estimate and
// invoice pricing evolved separately in the field, and the open-job
// worksheet carries a third layer, so each context owns its own default
// list and persisted override key.
type PricingContext string

const (
	PricingEstimate PricingContext = "estimate"
	PricingJob      PricingContext = "job"
	PricingInvoice  PricingContext = "invoice"
)

// Persisted override keys, one per pricing context.
const (
	KeyCostOptions         = "costOptions"
	KeyEstimateCostOptions = "estimateCostOptions"
	KeyInvoiceCostOptions  = "invoiceCostOptions"
)

func pricingConfig(pc PricingContext) (key string, defaults []entities.PriceOption, ok bool) {
	switch pc {
	case PricingEstimate:
		return KeyCostOptions, entities.DefaultEstimateOptions(), true
	case PricingJob:
		return KeyEstimateCostOptions, entities.DefaultJobOptions(), true
	case PricingInvoice:
		return KeyInvoiceCostOptions, entities.DefaultInvoiceOptions(), true
	}
	return "", nil, false
}

// IPriceListUseCase exposes the effective price list per context and
// the save-prices action.

type IPriceListUseCase interface {
	EffectiveList(ctx context.Context, pc PricingContext) ([]entities.PriceOption, error)
	SaveList(ctx context.Context, pc PricingContext, options []entities.PriceOption) error
}

type PriceListUseCase struct {
	repo interfaces.IPriceListRepository
}

var _ IPriceListUseCase = (*PriceListUseCase)(nil)

func NewPriceListUseCase(repo interfaces.IPriceListRepository) *PriceListUseCase {
	return &PriceListUseCase{repo: repo}
}

// EffectiveList merges the persisted overrides for the context onto its
// built-in defaults: matching labels replace the default value in
// place, unknown labels append after the defaults.
func (u *PriceListUseCase) EffectiveList(ctx context.Context, pc PricingContext) ([]entities.PriceOption, error) {
	return effectiveOptions(ctx, u.repo, pc)
}

// SaveList persists the full list verbatim under the context's override
// key. The whole saved list is treated as override on the next load, so
// a price edited back to its default value remains an explicit override
// until the key is cleared.
func (u *PriceListUseCase) SaveList(ctx context.Context, pc PricingContext, options []entities.PriceOption) error {
	key, _, ok := pricingConfig(pc)
	if !ok {
		return ErrUnknownPricingContext
	}
	return u.repo.SaveOptions(ctx, key, options)
}

// effectiveOptions is shared with the record use cases, which need the
// effective list of their context to resolve line-item costs.
func effectiveOptions(ctx context.Context, repo interfaces.IPriceListRepository, pc PricingContext) ([]entities.PriceOption, error) {
	key, defaults, ok := pricingConfig(pc)
	if !ok {
		return nil, ErrUnknownPricingContext
	}
	overrides, err := repo.LoadOptions(ctx, key)
	if err != nil {
		return nil, err
	}
	return entities.MergePriceLists(defaults, overrides), nil
}
