package usecase

import (
	"context"
	"errors"
	"testing"

	"paintworks/internal/domain/entities"
	mock_interfaces "paintworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExpenseUseCase_AddExpense(t *testing.T) {
	t.Run("missing description", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.AddExpense(context.Background(), entities.Expense{Amount: 10})
		if !errors.Is(err, ErrMissingExpenseFields) {
			t.Fatalf("expected ErrMissingExpenseFields, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.AddExpense(context.Background(), entities.Expense{Description: "paint"})
		if !errors.Is(err, ErrMissingExpenseFields) {
			t.Fatalf("expected ErrMissingExpenseFields, got %v", err)
		}
	})

	t.Run("appends with generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDirectExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().LoadDirectExpenses(gomock.Any()).Return([]entities.Expense{{ID: "e0"}}, nil)
		repo.EXPECT().SaveDirectExpenses(gomock.Any(), gomock.Len(2)).Return(nil)

		exp, err := uc.AddExpense(context.Background(), entities.Expense{
			JobNumber:   " 07 ",
			Description: " brushes ",
			Amount:      25.5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exp.ID == "" {
			t.Fatalf("expected generated id")
		}
		if exp.Description != "brushes" || exp.JobNumber != "07" {
			t.Fatalf("fields not trimmed: %+v", exp)
		}
	})
}

func TestExpenseUseCase_ListExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDirectExpenseRepository(ctrl)
	uc := NewExpenseUseCase(repo)

	ledger := []entities.Expense{
		{ID: "a", JobNumber: "07"},
		{ID: "b", JobNumber: "17"},
		{ID: "c", JobNumber: "21"},
	}
	repo.EXPECT().LoadDirectExpenses(gomock.Any()).Return(ledger, nil).Times(2)

	all, err := uc.ListExpenses(context.Background(), "")
	if err != nil || len(all) != 3 {
		t.Fatalf("unfiltered list wrong: %v, %v", all, err)
	}

	filtered, err := uc.ListExpenses(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 || filtered[0].ID != "a" || filtered[1].ID != "b" {
		t.Fatalf("substring filter wrong: %+v", filtered)
	}
}

func TestExpenseUseCase_DeleteExpense(t *testing.T) {
	t.Run("removes by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDirectExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().LoadDirectExpenses(gomock.Any()).Return([]entities.Expense{{ID: "a"}, {ID: "b"}}, nil)
		repo.EXPECT().SaveDirectExpenses(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, expenses []entities.Expense) error {
				if len(expenses) != 1 || expenses[0].ID != "b" {
					t.Fatalf("wrong expense removed: %+v", expenses)
				}
				return nil
			},
		)

		if err := uc.DeleteExpense(context.Background(), "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDirectExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().LoadDirectExpenses(gomock.Any()).Return(nil, nil)

		if err := uc.DeleteExpense(context.Background(), "zz"); !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}
