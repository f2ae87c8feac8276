package entities

// LineItemCategory tags which section of the job a line item belongs to.
type LineItemCategory string

const (
	CategoryRoom  LineItemCategory = "room"
	CategoryExtra LineItemCategory = "extra"
	CategoryPaint LineItemCategory = "paint"
)

// LineItem is one priced entry on a job: a room, an extra, or a paint
// product. Rooms, extras and paints share this shape; the slice a line
// item lives in determines its category.
//
// Cost invariant: when IsCustomCost is false the cost was taken from
// the effective price list at selection time. Later price-list edits do
// not retroactively re-price saved items; only the square-footage room
// is recomputed live, and only against lists that price square footage.
type LineItem struct {
	Label         string     `json:"label"`
	CustomLabel   string     `json:"customLabel,omitempty"`
	Cost          FlexNumber `json:"cost"`
	IsCustomCost  bool       `json:"isCustomCost,omitempty"`
	Note          string     `json:"note,omitempty"`
	Progress      []string   `json:"progress,omitempty"`
	SquareFootage FlexNumber `json:"squareFootage,omitempty"`
}

// DisplayLabel is the label shown on documents: the custom label when
// one was entered, otherwise the selected option label.
func (li LineItem) DisplayLabel() string {
	if li.CustomLabel != "" {
		return li.CustomLabel
	}
	return li.Label
}

// ToggleProgress adds the option to the room's progress checklist, or
// removes it when already present.
func (li *LineItem) ToggleProgress(option string) {
	for i, p := range li.Progress {
		if p == option {
			li.Progress = append(li.Progress[:i], li.Progress[i+1:]...)
			return
		}
	}
	li.Progress = append(li.Progress, option)
}

// ResolveCost resolves a line item's cost against the effective price
// list and returns the item with its cost settled.
//
// Paths, in order:
//   - square footage: cost = squareFootage x unitPrice("Square Footage"),
//     recomputed on every call, but only against lists that carry a
//     "Square Footage" price; where the list has no such entry (the
//     invoice sheet) the stored cost stays locked;
//   - custom: the manually entered cost is kept verbatim (bad input has
//     already coerced to 0);
//   - selection: a freshly selected option (cost still 0) takes the
//     option's numeric value; a previously resolved nonzero cost is
//     locked and left untouched.
func ResolveCost(item LineItem, list []PriceOption) LineItem {
	if item.Label == SquareFootageLabel {
		if unit := UnitPrice(list, SquareFootageLabel); unit != 0 {
			item.IsCustomCost = false
			item.Cost = FlexNumber(item.SquareFootage.Float() * unit)
		}
		return item
	}
	if item.IsCustomCost {
		return item
	}
	if item.Cost == 0 && item.Label != "" {
		for _, opt := range list {
			if opt.Label != item.Label {
				continue
			}
			if opt.Value.IsCustom() {
				// Sentinel selection: manual entry takes over.
				item.IsCustomCost = true
				return item
			}
			item.Cost = FlexNumber(opt.Value.Amount())
			return item
		}
	}
	return item
}

// ResolveCosts applies ResolveCost across a slice.
func ResolveCosts(items []LineItem, list []PriceOption) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = ResolveCost(item, list)
	}
	return out
}
