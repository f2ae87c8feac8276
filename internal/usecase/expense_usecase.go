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
	ErrMissingExpenseFields = errors.New("expense requires a description and a non-zero amount")
	ErrExpenseNotFound      = errors.New("expense not found")
)

// IExpenseUseCase exposes the standalone direct-expense ledger
// (materials and other costs not tied to a job worksheet).

type IExpenseUseCase interface {
	ListExpenses(ctx context.Context, jobNumberFilter string) ([]entities.Expense, error)
	AddExpense(ctx context.Context, expense entities.Expense) (entities.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IDirectExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IDirectExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// ListExpenses returns the ledger, optionally narrowed to entries whose
// job number contains the filter (case-insensitive substring, matching
// the search box it backs).
func (u *ExpenseUseCase) ListExpenses(ctx context.Context, jobNumberFilter string) ([]entities.Expense, error) {
	expenses, err := u.repo.LoadDirectExpenses(ctx)
	if err != nil {
		return nil, err
	}
	jobNumberFilter = strings.TrimSpace(jobNumberFilter)
	if jobNumberFilter == "" {
		return expenses, nil
	}
	needle := strings.ToLower(jobNumberFilter)
	filtered := make([]entities.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if strings.Contains(strings.ToLower(exp.JobNumber), needle) {
			filtered = append(filtered, exp)
		}
	}
	return filtered, nil
}

func (u *ExpenseUseCase) AddExpense(ctx context.Context, expense entities.Expense) (entities.Expense, error) {
	expense.Description = strings.TrimSpace(expense.Description)
	expense.JobNumber = strings.TrimSpace(expense.JobNumber)
	if expense.Description == "" || float64(expense.Amount) == 0 {
		return entities.Expense{}, ErrMissingExpenseFields
	}
	expense.ID = uuid.New().String()

	expenses, err := u.repo.LoadDirectExpenses(ctx)
	if err != nil {
		return entities.Expense{}, err
	}
	expenses = append(expenses, expense)
	if err := u.repo.SaveDirectExpenses(ctx, expenses); err != nil {
		return entities.Expense{}, err
	}
	return expense, nil
}

func (u *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	expenses, err := u.repo.LoadDirectExpenses(ctx)
	if err != nil {
		return err
	}
	for i, exp := range expenses {
		if exp.ID == id {
			return u.repo.SaveDirectExpenses(ctx, append(expenses[:i], expenses[i+1:]...))
		}
	}
	return ErrExpenseNotFound
}
