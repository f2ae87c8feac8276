package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// GSTHSTRate is the fixed tax rate applied to job subtotals.
const GSTHSTRate = 0.13

// Stage names one of the four independently persisted record
// collections a job moves through.
//
// A job is born as an estimate, promoted (copied) to the open jobs,
// closed (moved) into the closed jobs, and finally invoiced (copied)
// into the invoices. The collections are independently owned: the same
// job number legitimately appears in both estimates and open jobs
// while work is in flight.
type Stage string

const (
	StageEstimates  Stage = "estimates"
	StageOpenJobs   Stage = "openJobs"
	StageClosedJobs Stage = "closedJobs"
	StageInvoices   Stage = "invoices"
)

// Stages lists all record collections in lifecycle order.
func Stages() []Stage {
	return []Stage{StageEstimates, StageOpenJobs, StageClosedJobs, StageInvoices}
}

// JobRecord is a job at any lifecycle stage: estimate, open job, closed
// job or invoice. JSON field names follow the persisted schema the
// product has always written.
//
// Subtotal/GstHst/Total are caches computed at write time; after a
// reload readers use the stored figures, they are not re-derived.
type JobRecord struct {
	JobNumber    string     `json:"jobNumber"`
	CustomerName string     `json:"customerName"`
	Date         string     `json:"date"`
	Address      string     `json:"address"`
	PhoneNumber  string     `json:"phoneNumber"`
	Rooms        []LineItem `json:"rooms"`
	Extras       []LineItem `json:"extras,omitempty"`
	Paints       []LineItem `json:"paints,omitempty"`
	Description  string     `json:"description,omitempty"`
	CustomDesc   string     `json:"customDescription,omitempty"`
	Subtotal     float64    `json:"subtotal"`
	GstHst       float64    `json:"gstHst"`
	Total        float64    `json:"total"`
	Expenses     []Expense  `json:"expenses,omitempty"`
}

// EnsureRooms replaces a nil rooms slice with an empty one. Rooms
// carries no omitempty: the persisted blob always holds a JSON array
// for it, never null, matching every record the product has written.
func (j *JobRecord) EnsureRooms() {
	if j.Rooms == nil {
		j.Rooms = []LineItem{}
	}
}

// Recompute refreshes the cached totals from the line items: subtotal
// is the sum of every room, extra and paint cost, tax is 13% of that,
// rounded to cents. This is the estimate/invoice discipline — a pure
// fold over current items, no hidden accumulation state.
//
// Attached expenses are deliberately not part of the subtotal here;
// they only move the open-job running totals via Accumulate.
func (j *JobRecord) Recompute() {
	var subtotal float64
	for _, items := range [][]LineItem{j.Rooms, j.Extras, j.Paints} {
		for _, item := range items {
			subtotal += item.Cost.Float()
		}
	}
	j.Subtotal = RoundCents(subtotal)
	j.GstHst = RoundCents(j.Subtotal * GSTHSTRate)
	j.Total = RoundCents(j.Subtotal + j.GstHst)
}

// Accumulate shifts the open-job running totals by delta. Open jobs do
// not refold their line items on every change; expenses and extras add
// straight into the stored figures, and removal subtracts the stored
// amount so an add/remove pair restores the totals bit-exactly. No
// rounding happens here for that reason.
func (j *JobRecord) Accumulate(delta float64) {
	j.Subtotal += delta
	j.GstHst += delta * GSTHSTRate
	j.Total += delta + delta*GSTHSTRate
}

// UpsertRecord saves rec into the collection: replaced in place when a
// record with the same job number exists, appended otherwise.
func UpsertRecord(records []JobRecord, rec JobRecord) []JobRecord {
	for i, existing := range records {
		if existing.JobNumber == rec.JobNumber {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}

// RemoveAt deletes the record at the positional index. Callers address
// records by the index of the snapshot they listed; out-of-range
// indexes are rejected by the use cases before reaching here.
func RemoveAt(records []JobRecord, index int) []JobRecord {
	return append(records[:index], records[index+1:]...)
}

// NextJobNumber allocates the next job number over the union of every
// record collection: parse each identifier as an integer (ignoring the
// ones that aren't), take the maximum and add one. Numbers are never
// re-packed after deletion, so gaps are expected. Zero-padded to two
// digits for display continuity.
//
// Advisory only — the number stays editable and no duplicate check
// guards a manual overwrite.
func NextJobNumber(collections ...[]JobRecord) string {
	max := 0
	for _, records := range collections {
		for _, rec := range records {
			n, err := strconv.Atoi(strings.TrimSpace(rec.JobNumber))
			if err != nil {
				continue
			}
			if n > max {
				max = n
			}
		}
	}
	return fmt.Sprintf("%02d", max+1)
}
