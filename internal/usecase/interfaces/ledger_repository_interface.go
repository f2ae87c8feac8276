package interfaces

import (
	"context"

	"paintworks/internal/domain/entities"
)

// IDirectExpenseRepository abstracts the standalone expense ledger
// (expenses not attached to any job record).

type IDirectExpenseRepository interface {
	LoadDirectExpenses(ctx context.Context) ([]entities.Expense, error)
	SaveDirectExpenses(ctx context.Context, expenses []entities.Expense) error
}

// IStaffPaymentRepository abstracts the contractor payout ledger.

type IStaffPaymentRepository interface {
	LoadStaffPayments(ctx context.Context) ([]entities.StaffPayment, error)
	SaveStaffPayments(ctx context.Context, payments []entities.StaffPayment) error
}
