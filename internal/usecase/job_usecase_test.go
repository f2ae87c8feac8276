package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"paintworks/internal/domain/entities"
	mock_interfaces "paintworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_CloseJob(t *testing.T) {
	t.Run("writes closed before removing from open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		job := entities.JobRecord{JobNumber: "07", CustomerName: "Acme"}
		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return([]entities.JobRecord{job}, nil)
		jobs.EXPECT().Load(gomock.Any(), entities.StageClosedJobs).Return(nil, nil)

		gomock.InOrder(
			jobs.EXPECT().Save(gomock.Any(), entities.StageClosedJobs, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ entities.Stage, records []entities.JobRecord) error {
					if len(records) != 1 || records[0].JobNumber != "07" {
						t.Fatalf("closed collection wrong: %+v", records)
					}
					return nil
				},
			),
			jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ entities.Stage, records []entities.JobRecord) error {
					if len(records) != 0 {
						t.Fatalf("open collection should be empty: %+v", records)
					}
					return nil
				},
			),
		)

		rec, err := uc.CloseJob(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.JobNumber != "07" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("appends when the number is already archived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return([]entities.JobRecord{{JobNumber: "07", CustomerName: "second"}}, nil)
		jobs.EXPECT().Load(gomock.Any(), entities.StageClosedJobs).Return([]entities.JobRecord{{JobNumber: "07", CustomerName: "first"}}, nil)
		jobs.EXPECT().Save(gomock.Any(), entities.StageClosedJobs, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Stage, records []entities.JobRecord) error {
				if len(records) != 2 {
					t.Fatalf("earlier closed job lost: %+v", records)
				}
				if records[0].CustomerName != "first" || records[1].CustomerName != "second" {
					t.Fatalf("archive order wrong: %+v", records)
				}
				return nil
			},
		)
		jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Len(0)).Return(nil)

		if _, err := uc.CloseJob(context.Background(), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("closed write failure keeps the open job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return([]entities.JobRecord{{JobNumber: "07"}}, nil)
		jobs.EXPECT().Load(gomock.Any(), entities.StageClosedJobs).Return(nil, nil)
		jobs.EXPECT().Save(gomock.Any(), entities.StageClosedJobs, gomock.Any()).Return(errors.New("db"))
		// No save against the open collection.

		_, err := uc.CloseJob(context.Background(), 0)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return(nil, nil)

		if _, err := uc.CloseJob(context.Background(), 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestJobUseCase_SaveOpenJob_InitializesRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
	uc := NewJobUseCase(jobs, nil)

	jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return(nil, nil)
	jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Stage, records []entities.JobRecord) error {
			if records[0].Rooms == nil {
				t.Fatalf("nil rooms would persist as null: %+v", records[0])
			}
			return nil
		},
	)

	rec, err := uc.SaveOpenJob(context.Background(), entities.JobRecord{JobNumber: "07"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Rooms == nil {
		t.Fatalf("returned record keeps nil rooms")
	}
}

func TestJobUseCase_AddJobExpense(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.AddJobExpense(context.Background(), 0, entities.Expense{Description: "  "})
		if !errors.Is(err, ErrMissingExpenseFields) {
			t.Fatalf("expected ErrMissingExpenseFields, got %v", err)
		}
	})

	t.Run("appends and accumulates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		open := []entities.JobRecord{{JobNumber: "07", Subtotal: 100, GstHst: 13, Total: 113}}
		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return(open, nil)
		jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Any()).Return(nil)

		rec, err := uc.AddJobExpense(context.Background(), 0, entities.Expense{Description: "paint", Amount: 40})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec.Expenses) != 1 {
			t.Fatalf("expense not appended: %+v", rec.Expenses)
		}
		exp := rec.Expenses[0]
		if exp.ID == "" {
			t.Fatalf("expected generated id")
		}
		if exp.JobNumber != "07" {
			t.Fatalf("expense not stamped with job number: %+v", exp)
		}
		if math.Abs(rec.Subtotal-140) > 1e-9 || math.Abs(rec.GstHst-18.2) > 1e-9 || math.Abs(rec.Total-158.2) > 1e-9 {
			t.Fatalf("totals not accumulated: %+v", rec)
		}
	})
}

func TestJobUseCase_RemoveJobExpense(t *testing.T) {
	t.Run("reverses the stored amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		open := []entities.JobRecord{{
			JobNumber: "07",
			Subtotal:  140, GstHst: 18.2, Total: 158.2,
			Expenses: []entities.Expense{{ID: "e1", Description: "paint", Amount: 40}},
		}}
		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return(open, nil)
		jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Any()).Return(nil)

		rec, err := uc.RemoveJobExpense(context.Background(), 0, "e1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec.Expenses) != 0 {
			t.Fatalf("expense not removed: %+v", rec.Expenses)
		}
		if math.Abs(rec.Subtotal-100) > 1e-9 || math.Abs(rec.GstHst-13) > 1e-9 || math.Abs(rec.Total-113) > 1e-9 {
			t.Fatalf("totals not reversed: %+v", rec)
		}
	})

	t.Run("unknown expense id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return([]entities.JobRecord{{JobNumber: "07"}}, nil)

		if _, err := uc.RemoveJobExpense(context.Background(), 0, "nope"); !errors.Is(err, ErrJobExpenseNotFound) {
			t.Fatalf("expected ErrJobExpenseNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_AddJobExtra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
	prices := mock_interfaces.NewMockIPriceListRepository(ctrl)
	uc := NewJobUseCase(jobs, prices)

	open := []entities.JobRecord{{JobNumber: "07", Subtotal: 100, GstHst: 13, Total: 113}}
	jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return(open, nil)
	prices.EXPECT().LoadOptions(gomock.Any(), KeyEstimateCostOptions).Return(nil, nil)
	jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Any()).Return(nil)

	rec, err := uc.AddJobExtra(context.Background(), 0, entities.LineItem{Label: "Just ceiling"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Extras) != 1 || rec.Extras[0].Cost.Float() != 150 {
		t.Fatalf("extra not priced from job list: %+v", rec.Extras)
	}
	if math.Abs(rec.Subtotal-250) > 1e-9 {
		t.Fatalf("subtotal not accumulated: %v", rec.Subtotal)
	}
}

func TestJobUseCase_UpdateRoom(t *testing.T) {
	t.Run("toggles progress and sets note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		open := []entities.JobRecord{{
			JobNumber: "07",
			Rooms:     []entities.LineItem{{Label: "9ft walls", Cost: 275}},
		}}
		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return(open, nil)
		jobs.EXPECT().Save(gomock.Any(), entities.StageOpenJobs, gomock.Any()).Return(nil)

		note := "two coats"
		rec, err := uc.UpdateRoom(context.Background(), 0, 0, "cut in", &note)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		room := rec.Rooms[0]
		if len(room.Progress) != 1 || room.Progress[0] != "cut in" {
			t.Fatalf("progress not toggled: %+v", room.Progress)
		}
		if room.Note != "two coats" {
			t.Fatalf("note not set: %q", room.Note)
		}
		if room.Cost.Float() != 275 {
			t.Fatalf("cost must not change: %v", room.Cost.Float())
		}
	})

	t.Run("room index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		jobs.EXPECT().Load(gomock.Any(), entities.StageOpenJobs).Return([]entities.JobRecord{{JobNumber: "07"}}, nil)

		if _, err := uc.UpdateRoom(context.Background(), 0, 3, "x", nil); !errors.Is(err, ErrRoomIndexOutOfRange) {
			t.Fatalf("expected ErrRoomIndexOutOfRange, got %v", err)
		}
	})
}

func TestJobUseCase_DeleteClosedJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobCollectionRepository(ctrl)
	uc := NewJobUseCase(jobs, nil)

	jobs.EXPECT().Load(gomock.Any(), entities.StageClosedJobs).Return([]entities.JobRecord{{JobNumber: "01"}}, nil)
	jobs.EXPECT().Save(gomock.Any(), entities.StageClosedJobs, gomock.Len(0)).Return(nil)

	if err := uc.DeleteClosedJob(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
