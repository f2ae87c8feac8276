package interfaces

import (
	"context"

	"paintworks/internal/domain/entities"
)

// IJobCollectionRepository abstracts the persisted record collections
// (estimates, open jobs, closed jobs, invoices).
//
// Each collection is one flat JSON-array blob: every mutation is a
// load-whole-collection / modify / save-whole-collection cycle, and the
// last writer wins at whole-collection granularity. That blunt model is
// the product's accepted consistency contract, not something this
// interface should paper over.

type IJobCollectionRepository interface {
	Load(ctx context.Context, stage entities.Stage) ([]entities.JobRecord, error)
	Save(ctx context.Context, stage entities.Stage, records []entities.JobRecord) error
}
