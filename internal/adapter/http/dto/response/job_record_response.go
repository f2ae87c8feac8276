package response

import (
	"paintworks/internal/domain/entities"
)

type LineItemResponse struct {
	Label         string   `json:"label"`
	CustomLabel   string   `json:"customLabel,omitempty"`
	Cost          float64  `json:"cost"`
	IsCustomCost  bool     `json:"isCustomCost,omitempty"`
	Note          string   `json:"note,omitempty"`
	Progress      []string `json:"progress,omitempty"`
	SquareFootage float64  `json:"squareFootage,omitempty"`
}

func FromLineItem(item entities.LineItem) LineItemResponse {
	return LineItemResponse{
		Label:         item.Label,
		CustomLabel:   item.CustomLabel,
		Cost:          item.Cost.Float(),
		IsCustomCost:  item.IsCustomCost,
		Note:          item.Note,
		Progress:      item.Progress,
		SquareFootage: item.SquareFootage.Float(),
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItemResponse, len(items))
	for i, item := range items {
		out[i] = FromLineItem(item)
	}
	return out
}

type ExpenseResponse struct {
	ID          string  `json:"id,omitempty"`
	JobNumber   string  `json:"jobNumber,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Receipt     string  `json:"receipt,omitempty"`
}

func FromExpense(exp entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          exp.ID,
		JobNumber:   exp.JobNumber,
		Description: exp.Description,
		Amount:      exp.Amount.Float(),
		Receipt:     exp.Receipt,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, exp := range expenses {
		out[i] = FromExpense(exp)
	}
	return out
}

type JobRecordResponse struct {
	JobNumber         string             `json:"jobNumber"`
	CustomerName      string             `json:"customerName"`
	Date              string             `json:"date"`
	Address           string             `json:"address"`
	PhoneNumber       string             `json:"phoneNumber"`
	Rooms             []LineItemResponse `json:"rooms"`
	Extras            []LineItemResponse `json:"extras,omitempty"`
	Paints            []LineItemResponse `json:"paints,omitempty"`
	Description       string             `json:"description,omitempty"`
	CustomDescription string             `json:"customDescription,omitempty"`
	Subtotal          float64            `json:"subtotal"`
	GstHst            float64            `json:"gstHst"`
	Total             float64            `json:"total"`
	Expenses          []ExpenseResponse  `json:"expenses,omitempty"`
}

func FromJobRecord(rec entities.JobRecord) JobRecordResponse {
	var expenses []ExpenseResponse
	if len(rec.Expenses) > 0 {
		expenses = FromExpenses(rec.Expenses)
	}
	return JobRecordResponse{
		JobNumber:         rec.JobNumber,
		CustomerName:      rec.CustomerName,
		Date:              rec.Date,
		Address:           rec.Address,
		PhoneNumber:       rec.PhoneNumber,
		Rooms:             fromLineItems(rec.Rooms),
		Extras:            fromLineItems(rec.Extras),
		Paints:            fromLineItems(rec.Paints),
		Description:       rec.Description,
		CustomDescription: rec.CustomDesc,
		Subtotal:          rec.Subtotal,
		GstHst:            rec.GstHst,
		Total:             rec.Total,
		Expenses:          expenses,
	}
}

func FromJobRecords(records []entities.JobRecord) []JobRecordResponse {
	out := make([]JobRecordResponse, len(records))
	for i, rec := range records {
		out[i] = FromJobRecord(rec)
	}
	return out
}

// JobNumberResponse carries the next suggested job number.
type JobNumberResponse struct {
	JobNumber string `json:"jobNumber"`
}
