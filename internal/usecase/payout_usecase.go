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
	ErrMissingPayoutFields = errors.New("payout requires a name and a non-zero amount")
	ErrPayoutNotFound      = errors.New("payout not found")
)

// IPayoutUseCase exposes the staff payout ledger. Each entry's payable
// total is fixed at record time: the entered amount, grossed up by GST
// when the payee invoices with tax.

type IPayoutUseCase interface {
	ListPayouts(ctx context.Context, nameFilter string) ([]entities.StaffPayment, error)
	AddPayout(ctx context.Context, payment entities.StaffPayment) (entities.StaffPayment, error)
	DeletePayout(ctx context.Context, id string) error
}

type PayoutUseCase struct {
	repo interfaces.IStaffPaymentRepository
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(repo interfaces.IStaffPaymentRepository) *PayoutUseCase {
	return &PayoutUseCase{repo: repo}
}

func (u *PayoutUseCase) ListPayouts(ctx context.Context, nameFilter string) ([]entities.StaffPayment, error) {
	payments, err := u.repo.LoadStaffPayments(ctx)
	if err != nil {
		return nil, err
	}
	nameFilter = strings.TrimSpace(nameFilter)
	if nameFilter == "" {
		return payments, nil
	}
	needle := strings.ToLower(nameFilter)
	filtered := make([]entities.StaffPayment, 0, len(payments))
	for _, p := range payments {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (u *PayoutUseCase) AddPayout(ctx context.Context, payment entities.StaffPayment) (entities.StaffPayment, error) {
	payment.Name = strings.TrimSpace(payment.Name)
	payment.Description = strings.TrimSpace(payment.Description)
	if payment.Name == "" || float64(payment.Amount) == 0 {
		return entities.StaffPayment{}, ErrMissingPayoutFields
	}
	payment.ID = uuid.New().String()
	payment.ComputeTotal()

	payments, err := u.repo.LoadStaffPayments(ctx)
	if err != nil {
		return entities.StaffPayment{}, err
	}
	payments = append(payments, payment)
	if err := u.repo.SaveStaffPayments(ctx, payments); err != nil {
		return entities.StaffPayment{}, err
	}
	return payment, nil
}

func (u *PayoutUseCase) DeletePayout(ctx context.Context, id string) error {
	payments, err := u.repo.LoadStaffPayments(ctx)
	if err != nil {
		return err
	}
	for i, p := range payments {
		if p.ID == id {
			return u.repo.SaveStaffPayments(ctx, append(payments[:i], payments[i+1:]...))
		}
	}
	return ErrPayoutNotFound
}
