package usecase

import (
	"context"
	"strings"

	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase/interfaces"
)

// IInvoiceUseCase exposes the invoice collection. Invoices follow the
// same full-recompute discipline as estimates: every save re-resolves
// line-item costs against the invoice price list and rebuilds the
// totals from scratch.

type IInvoiceUseCase interface {
	ListInvoices(ctx context.Context) ([]entities.JobRecord, error)
	SaveInvoice(ctx context.Context, rec entities.JobRecord) (entities.JobRecord, error)
	DeleteInvoice(ctx context.Context, index int) error
	CreateFromClosedJob(ctx context.Context, closedIndex int) (entities.JobRecord, error)
}

type InvoiceUseCase struct {
	jobs   interfaces.IJobCollectionRepository
	prices interfaces.IPriceListRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(jobs interfaces.IJobCollectionRepository, prices interfaces.IPriceListRepository) *InvoiceUseCase {
	return &InvoiceUseCase{jobs: jobs, prices: prices}
}

func (u *InvoiceUseCase) ListInvoices(ctx context.Context) ([]entities.JobRecord, error) {
	return u.jobs.Load(ctx, entities.StageInvoices)
}

func (u *InvoiceUseCase) SaveInvoice(ctx context.Context, rec entities.JobRecord) (entities.JobRecord, error) {
	rec.JobNumber = strings.TrimSpace(rec.JobNumber)

	list, err := effectiveOptions(ctx, u.prices, PricingInvoice)
	if err != nil {
		return entities.JobRecord{}, err
	}
	rec.Rooms = entities.ResolveCosts(rec.Rooms, list)
	rec.Extras = entities.ResolveCosts(rec.Extras, list)
	rec.Paints = entities.ResolveCosts(rec.Paints, list)
	rec.Recompute()

	invoices, err := u.jobs.Load(ctx, entities.StageInvoices)
	if err != nil {
		return entities.JobRecord{}, err
	}
	invoices = entities.UpsertRecord(invoices, rec)
	if err := u.jobs.Save(ctx, entities.StageInvoices, invoices); err != nil {
		return entities.JobRecord{}, err
	}
	return rec, nil
}

func (u *InvoiceUseCase) DeleteInvoice(ctx context.Context, index int) error {
	invoices, err := u.jobs.Load(ctx, entities.StageInvoices)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(invoices) {
		return ErrIndexOutOfRange
	}
	return u.jobs.Save(ctx, entities.StageInvoices, entities.RemoveAt(invoices, index))
}

// CreateFromClosedJob copies the closed job at closedIndex into the
// invoices (upsert by job number) with totals recomputed from its line
// items. The closed record stays put so the archive remains complete.
func (u *InvoiceUseCase) CreateFromClosedJob(ctx context.Context, closedIndex int) (entities.JobRecord, error) {
	closedJobs, err := u.jobs.Load(ctx, entities.StageClosedJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if closedIndex < 0 || closedIndex >= len(closedJobs) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}
	rec := closedJobs[closedIndex]
	rec.Recompute()

	invoices, err := u.jobs.Load(ctx, entities.StageInvoices)
	if err != nil {
		return entities.JobRecord{}, err
	}
	invoices = entities.UpsertRecord(invoices, rec)
	if err := u.jobs.Save(ctx, entities.StageInvoices, invoices); err != nil {
		return entities.JobRecord{}, err
	}
	return rec, nil
}
