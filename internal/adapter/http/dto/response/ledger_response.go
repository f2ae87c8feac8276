package response

import (
	"paintworks/internal/domain/entities"
)

type PayoutResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	GST         bool    `json:"gst"`
	Total       float64 `json:"total"`
}

func FromStaffPayment(p entities.StaffPayment) PayoutResponse {
	return PayoutResponse{
		ID:          p.ID,
		Date:        p.Date,
		Name:        p.Name,
		Description: p.Description,
		Amount:      p.Amount.Float(),
		GST:         p.GST,
		Total:       p.Total,
	}
}

func FromStaffPayments(payments []entities.StaffPayment) []PayoutResponse {
	out := make([]PayoutResponse, len(payments))
	for i, p := range payments {
		out[i] = FromStaffPayment(p)
	}
	return out
}
