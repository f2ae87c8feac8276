package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase/interfaces"
)

var (
	ErrJobExpenseNotFound  = errors.New("job expense not found")
	ErrRoomIndexOutOfRange = errors.New("room index out of range")
)

// IJobUseCase exposes the open-job worksheet and the closed-job
// archive.
//
// The worksheet is the accumulating stage: extras and expenses adjust
// the running totals by delta instead of recomputing from scratch, so
// totals carried over from the estimate survive items whose costs were
// typed in rather than priced from a list. Closing a job writes the
// record into the closed collection before removing it from the open
// one; a crash between the two writes leaves the job in both places,
// never in neither.

type IJobUseCase interface {
	ListOpenJobs(ctx context.Context) ([]entities.JobRecord, error)
	SaveOpenJob(ctx context.Context, rec entities.JobRecord) (entities.JobRecord, error)
	DeleteOpenJob(ctx context.Context, index int) error
	CloseJob(ctx context.Context, index int) (entities.JobRecord, error)
	AddJobExpense(ctx context.Context, index int, expense entities.Expense) (entities.JobRecord, error)
	RemoveJobExpense(ctx context.Context, index int, expenseID string) (entities.JobRecord, error)
	AddJobExtra(ctx context.Context, index int, item entities.LineItem) (entities.JobRecord, error)
	UpdateRoom(ctx context.Context, index, roomIndex int, toggleOption string, note *string) (entities.JobRecord, error)
	ListClosedJobs(ctx context.Context) ([]entities.JobRecord, error)
	DeleteClosedJob(ctx context.Context, index int) error
}

type JobUseCase struct {
	jobs   interfaces.IJobCollectionRepository
	prices interfaces.IPriceListRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobCollectionRepository, prices interfaces.IPriceListRepository) *JobUseCase {
	return &JobUseCase{jobs: jobs, prices: prices}
}

func (u *JobUseCase) ListOpenJobs(ctx context.Context) ([]entities.JobRecord, error) {
	return u.jobs.Load(ctx, entities.StageOpenJobs)
}

// SaveOpenJob upserts the whole worksheet record by job number. Totals
// are stored as given; the worksheet owns its running totals and the
// server does not second-guess them on a full save.
func (u *JobUseCase) SaveOpenJob(ctx context.Context, rec entities.JobRecord) (entities.JobRecord, error) {
	rec.JobNumber = strings.TrimSpace(rec.JobNumber)
	rec.EnsureRooms()
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

func (u *JobUseCase) DeleteOpenJob(ctx context.Context, index int) error {
	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(openJobs) {
		return ErrIndexOutOfRange
	}
	return u.jobs.Save(ctx, entities.StageOpenJobs, entities.RemoveAt(openJobs, index))
}

// CloseJob moves the open job at index into the closed collection. The
// record is appended, never upserted: job numbers are advisory and two
// closed jobs may legitimately share one, so the archive keeps both.
// The closed collection is saved first; only after that write succeeds
// is the record removed from the open list.
func (u *JobUseCase) CloseJob(ctx context.Context, index int) (entities.JobRecord, error) {
	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if index < 0 || index >= len(openJobs) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}
	rec := openJobs[index]

	closedJobs, err := u.jobs.Load(ctx, entities.StageClosedJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	closedJobs = append(closedJobs, rec)
	if err := u.jobs.Save(ctx, entities.StageClosedJobs, closedJobs); err != nil {
		return entities.JobRecord{}, err
	}
	if err := u.jobs.Save(ctx, entities.StageOpenJobs, entities.RemoveAt(openJobs, index)); err != nil {
		return entities.JobRecord{}, err
	}
	return rec, nil
}

// AddJobExpense appends an expense to the job and bumps the running
// totals by its amount.
func (u *JobUseCase) AddJobExpense(ctx context.Context, index int, expense entities.Expense) (entities.JobRecord, error) {
	expense.Description = strings.TrimSpace(expense.Description)
	if expense.Description == "" || float64(expense.Amount) == 0 {
		return entities.JobRecord{}, ErrMissingExpenseFields
	}

	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if index < 0 || index >= len(openJobs) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}

	expense.ID = uuid.New().String()
	expense.JobNumber = openJobs[index].JobNumber
	openJobs[index].Expenses = append(openJobs[index].Expenses, expense)
	openJobs[index].Accumulate(float64(expense.Amount))

	if err := u.jobs.Save(ctx, entities.StageOpenJobs, openJobs); err != nil {
		return entities.JobRecord{}, err
	}
	return openJobs[index], nil
}

// RemoveJobExpense drops the expense by id and backs its stored amount
// out of the running totals, reversing the exact delta the add applied.
func (u *JobUseCase) RemoveJobExpense(ctx context.Context, index int, expenseID string) (entities.JobRecord, error) {
	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if index < 0 || index >= len(openJobs) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}

	job := &openJobs[index]
	found := -1
	for i, exp := range job.Expenses {
		if exp.ID == expenseID {
			found = i
			break
		}
	}
	if found < 0 {
		return entities.JobRecord{}, ErrJobExpenseNotFound
	}
	job.Accumulate(-float64(job.Expenses[found].Amount))
	job.Expenses = append(job.Expenses[:found], job.Expenses[found+1:]...)

	if err := u.jobs.Save(ctx, entities.StageOpenJobs, openJobs); err != nil {
		return entities.JobRecord{}, err
	}
	return *job, nil
}

// AddJobExtra resolves the extra's cost against the job price list,
// appends it and bumps the running totals by that cost.
func (u *JobUseCase) AddJobExtra(ctx context.Context, index int, item entities.LineItem) (entities.JobRecord, error) {
	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if index < 0 || index >= len(openJobs) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}

	list, err := effectiveOptions(ctx, u.prices, PricingJob)
	if err != nil {
		return entities.JobRecord{}, err
	}
	item = entities.ResolveCost(item, list)

	openJobs[index].Extras = append(openJobs[index].Extras, item)
	openJobs[index].Accumulate(float64(item.Cost))

	if err := u.jobs.Save(ctx, entities.StageOpenJobs, openJobs); err != nil {
		return entities.JobRecord{}, err
	}
	return openJobs[index], nil
}

// UpdateRoom toggles a progress option and/or replaces the room note on
// the room at roomIndex. Cost and totals are untouched; progress is
// bookkeeping, not pricing.
func (u *JobUseCase) UpdateRoom(ctx context.Context, index, roomIndex int, toggleOption string, note *string) (entities.JobRecord, error) {
	openJobs, err := u.jobs.Load(ctx, entities.StageOpenJobs)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if index < 0 || index >= len(openJobs) {
		return entities.JobRecord{}, ErrIndexOutOfRange
	}
	job := &openJobs[index]
	if roomIndex < 0 || roomIndex >= len(job.Rooms) {
		return entities.JobRecord{}, ErrRoomIndexOutOfRange
	}

	if toggleOption != "" {
		job.Rooms[roomIndex].ToggleProgress(toggleOption)
	}
	if note != nil {
		job.Rooms[roomIndex].Note = *note
	}

	if err := u.jobs.Save(ctx, entities.StageOpenJobs, openJobs); err != nil {
		return entities.JobRecord{}, err
	}
	return *job, nil
}

func (u *JobUseCase) ListClosedJobs(ctx context.Context) ([]entities.JobRecord, error) {
	return u.jobs.Load(ctx, entities.StageClosedJobs)
}

func (u *JobUseCase) DeleteClosedJob(ctx context.Context, index int) error {
	closedJobs, err := u.jobs.Load(ctx, entities.StageClosedJobs)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(closedJobs) {
		return ErrIndexOutOfRange
	}
	return u.jobs.Save(ctx, entities.StageClosedJobs, entities.RemoveAt(closedJobs, index))
}
