package entities

// StaffPayment is one contractor payout ledger entry.
type StaffPayment struct {
	ID          string     `json:"id,omitempty"`
	Date        string     `json:"date"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Amount      FlexNumber `json:"amount"`
	GST         bool       `json:"gst"`
	Total       float64    `json:"total"`
}

// ComputeTotal settles the payout total: amount plus 13% GST when the
// payment includes it, the bare amount otherwise.
func (p *StaffPayment) ComputeTotal() {
	if p.GST {
		p.Total = p.Amount.Float() * (1 + GSTHSTRate)
		return
	}
	p.Total = p.Amount.Float()
}
