package usecase

import (
	"context"
	"errors"
	"strings"

	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// IEstimateUseCase exposes the estimate stage of the job lifecycle.
//
// Saving is an upsert keyed on job number (the canonical save of the
// calculator screen); deletion is positional against the list the
// caller most recently fetched; promotion copies the estimate into the
// open jobs, after which the two records evolve independently.

type IEstimateUseCase interface {
	SaveEstimate(ctx context.Context, rec entities.JobRecord) (entities.JobRecord, error)
	ListEstimates(ctx context.Context) ([]entities.JobRecord, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (entities.JobRecord, error)
	DeleteEstimate(ctx context.Context, index int) error
	PromoteToOpenJob(ctx context.Context, index int) (entities.JobRecord, error)
}

type EstimateUseCase struct {
	jobs      interfaces.IJobCollectionRepository
	prices    interfaces.IPriceListRepository
	allocator INumberAllocator
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(jobs interfaces.IJobCollectionRepository, prices interfaces.IPriceListRepository, allocator INumberAllocator) *EstimateUseCase {
	return &EstimateUseCase{jobs: jobs, prices: prices, allocator: allocator}
}

// SaveEstimate resolves line-item costs against the effective estimate
// price list, recomputes the cached totals and upserts the record by
// job number. A blank job number gets the next allocated one.
func (u *EstimateUseCase) SaveEstimate(ctx context.Context, rec entities.JobRecord) (entities.JobRecord, error) {
	rec.JobNumber = strings.TrimSpace(rec.JobNumber)
	if rec.JobNumber == "" {
		number, err := u.allocator.NextNumber(ctx)
		if err != nil {
			return entities.JobRecord{}, err
		}
		rec.JobNumber = number
	}

	list, err := effectiveOptions(ctx, u.prices, PricingEstimate)
	if err != nil {
		return entities.JobRecord{}, err
	}
	rec.Rooms = entities.ResolveCosts(rec.Rooms, list)
	rec.Extras = entities.ResolveCosts(rec.Extras, list)
	rec.Paints = entities.ResolveCosts(rec.Paints, list)
	rec.Recompute()

	estimates, err := u.jobs.Load(ctx, entities.StageEstimates)
	if err != nil {
		return entities.JobRecord{}, err
	}
	estimates = entities.UpsertRecord(estimates, rec)
	if err := u.jobs.Save(ctx, entities.StageEstimates, estimates); err != nil {
		return entities.JobRecord{}, err
	}
	return rec, nil
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context) ([]entities.JobRecord, error) {
	return u.jobs.Load(ctx, entities.StageEstimates)
}

func (u *EstimateUseCase) GetByJobNumber(ctx context.Context, jobNumber string) (entities.JobRecord, error) {
	jobNumber = strings.TrimSpace(jobNumber)
	estimates, err := u.jobs.Load(ctx, entities.StageEstimates)
	if err != nil {
		return entities.JobRecord{}, err
	}
	for _, rec := range estimates {
		if rec.JobNumber == jobNumber {
			return rec, nil
		}
	}
	return entities.JobRecord{}, ErrEstimateNotFound
}

func (u *EstimateUseCase) DeleteEstimate(ctx context.Context, index int) error {
	estimates, err := u.jobs.Load(ctx, entities.StageEstimates)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(estimates) {
		return ErrIndexOutOfRange
	}
	return u.jobs.Save(ctx, entities.StageEstimates, entities.RemoveAt(estimates, index))
}

// PromoteToOpenJob copies the estimate at index into the open jobs
// (upsert by job number). The estimate stays where it is; the same
// number living in both collections is the expected overlap while work
// is in flight.
func (u *EstimateUseCase) PromoteToOpenJob(ctx context.Context, index int) (entities.JobRecord, error) {
	estimates, err := u.jobs.Load(ctx, entities.StageEstimates)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if index < 0 || index >= len(estimates) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}
	rec := estimates[index]

	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	openJobs = entities.UpsertRecord(openJobs, rec)
	if err := u.jobs.Save(ctx, entities.StageOpenJobs, openJobs); err != nil {
		return entities.JobRecord{}, err
	}
	return rec, nil
}
