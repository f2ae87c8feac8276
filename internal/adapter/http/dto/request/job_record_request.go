package request

import (
	"paintworks/internal/domain/entities"
)

// LineItemRequest is one room, extra or paint entry as submitted by the
// calculator screens. Cost and squareFootage accept both JSON numbers
// and numeric strings; anything unparseable coerces to 0.
type LineItemRequest struct {
	Label         string              `json:"label"`
	CustomLabel   string              `json:"customLabel"`
	Cost          entities.FlexNumber `json:"cost"`
	IsCustomCost  bool                `json:"isCustomCost"`
	Note          string              `json:"note"`
	Progress      []string            `json:"progress"`
	SquareFootage entities.FlexNumber `json:"squareFootage"`
}

func (r LineItemRequest) ToLineItem() entities.LineItem {
	return entities.LineItem{
		Label:         r.Label,
		CustomLabel:   r.CustomLabel,
		Cost:          r.Cost,
		IsCustomCost:  r.IsCustomCost,
		Note:          r.Note,
		Progress:      r.Progress,
		SquareFootage: r.SquareFootage,
	}
}

func toLineItems(reqs []LineItemRequest) []entities.LineItem {
	if len(reqs) == 0 {
		return nil
	}
	items := make([]entities.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToLineItem()
	}
	return items
}

// JobRecordRequest is the full record payload used to save estimates,
// open-job worksheets and invoices. Totals are accepted as submitted;
// whether they are recomputed or trusted is the receiving endpoint's
// business.
type JobRecordRequest struct {
	JobNumber         string              `json:"jobNumber"`
	CustomerName      string              `json:"customerName" binding:"required"`
	Date              string              `json:"date"`
	Address           string              `json:"address"`
	PhoneNumber       string              `json:"phoneNumber"`
	Rooms             []LineItemRequest   `json:"rooms"`
	Extras            []LineItemRequest   `json:"extras"`
	Paints            []LineItemRequest   `json:"paints"`
	Description       string              `json:"description"`
	CustomDescription string              `json:"customDescription"`
	Subtotal          entities.FlexNumber `json:"subtotal"`
	GstHst            entities.FlexNumber `json:"gstHst"`
	Total             entities.FlexNumber `json:"total"`
	Expenses          []JobExpenseRequest `json:"expenses"`
}

func (r JobRecordRequest) ToRecord() entities.JobRecord {
	var expenses []entities.Expense
	if len(r.Expenses) > 0 {
		expenses = make([]entities.Expense, len(r.Expenses))
		for i, e := range r.Expenses {
			expenses[i] = e.ToExpense()
		}
	}
	return entities.JobRecord{
		JobNumber:    r.JobNumber,
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Address:      r.Address,
		PhoneNumber:  r.PhoneNumber,
		Rooms:        toLineItems(r.Rooms),
		Extras:       toLineItems(r.Extras),
		Paints:       toLineItems(r.Paints),
		Description:  r.Description,
		CustomDesc:   r.CustomDescription,
		Subtotal:     r.Subtotal.Float(),
		GstHst:       r.GstHst.Float(),
		Total:        r.Total.Float(),
		Expenses:     expenses,
	}
}
