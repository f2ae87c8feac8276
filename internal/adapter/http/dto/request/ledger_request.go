package request

import (
	"paintworks/internal/domain/entities"
)

// PayoutRequest files one staff payout ledger entry. Gst marks whether
// the payee invoices with GST, which grosses the payable total up by
// 13%.
type PayoutRequest struct {
	Date        string              `json:"date"`
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Amount      entities.FlexNumber `json:"amount"`
	GST         bool                `json:"gst"`
}

func (r PayoutRequest) ToStaffPayment() entities.StaffPayment {
	return entities.StaffPayment{
		Date:        r.Date,
		Name:        r.Name,
		Description: r.Description,
		Amount:      r.Amount,
		GST:         r.GST,
	}
}
