package usecase

import (
	"context"

	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase/interfaces"
)

// INumberAllocator produces the next human-readable job number.
//
// Allocation is advisory: the number is handed to the client as a
// suggestion and stays freely editable, so uniqueness is a convention
// upheld by never re-packing numbers after deletion, not an enforced
// invariant.

type INumberAllocator interface {
	NextNumber(ctx context.Context) (string, error)
}

type NumberAllocator struct {
	jobs interfaces.IJobCollectionRepository
}

var _ INumberAllocator = (*NumberAllocator)(nil)

func NewNumberAllocator(jobs interfaces.IJobCollectionRepository) *NumberAllocator {
	return &NumberAllocator{jobs: jobs}
}

// NextNumber scans the union of all four record collections and returns
// max(numeric identifiers)+1, zero-padded to two digits.
func (a *NumberAllocator) NextNumber(ctx context.Context) (string, error) {
	collections := make([][]entities.JobRecord, 0, 4)
	for _, stage := range entities.Stages() {
		records, err := a.jobs.Load(ctx, stage)
		if err != nil {
			return "", err
		}
		collections = append(collections, records)
	}
	return entities.NextJobNumber(collections...), nil
}
