package entities

// Expense is a cost entry, either attached to a job (where its amount
// feeds the open-job running totals) or held standalone in the direct
// expense ledger. Receipt carries the uploaded image as a base64 data
// URL, exactly as the consuming UI stores it.
type Expense struct {
	ID          string     `json:"id,omitempty"`
	JobNumber   string     `json:"jobNumber,omitempty"`
	Description string     `json:"description"`
	Amount      FlexNumber `json:"amount"`
	Receipt     string     `json:"receipt,omitempty"`
}
