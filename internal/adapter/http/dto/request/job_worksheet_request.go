package request

import (
	"paintworks/internal/domain/entities"
)

// JobExpenseRequest is an expense attached to an open-job worksheet or
// filed in the direct-expense ledger. Receipt, when present, is a
// base64 data URL.
type JobExpenseRequest struct {
	JobNumber   string              `json:"jobNumber"`
	Description string              `json:"description"`
	Amount      entities.FlexNumber `json:"amount"`
	Receipt     string              `json:"receipt"`
}

func (r JobExpenseRequest) ToExpense() entities.Expense {
	return entities.Expense{
		JobNumber:   r.JobNumber,
		Description: r.Description,
		Amount:      r.Amount,
		Receipt:     r.Receipt,
	}
}

// RoomUpdateRequest patches one room on an open-job worksheet: toggle a
// progress option, replace the note, or both. A nil note leaves the
// existing note alone; an empty string clears it.
type RoomUpdateRequest struct {
	ToggleOption string  `json:"toggleOption"`
	Note         *string `json:"note"`
}
