package models

// LineItem represents one row of a commercial document (order, quote,
// reception slip). Dimensions are in centimeters; splicer is the material
// thickness used by the MASSIF tonnage formula.
//
// The derived fields (unit, totalQuantity, totalPrice) are computed by the
// pricing engine and overwritten on every recalculation. totalPrice stays
// null when the row has no unit price yet — downstream screens distinguish
// "not yet priced" from "priced at zero".
type LineItem struct {
	ID       int64  `json:"id,omitempty"`
	Group    int    `json:"group,omitempty"`
	Type     string `json:"type"`
	Product  string `json:"product,omitempty"`
	Options  string `json:"options,omitempty"`
	State    string `json:"state,omitempty"`

	Splicer  *float64 `json:"splicer,omitempty"`
	Length   *float64 `json:"length,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Quantity float64  `json:"quantity"`

	UnitPrice *float64 `json:"unitPrice,omitempty"`

	// Derived fields.
	Unit          string   `json:"unit,omitempty"`
	TotalQuantity *float64 `json:"totalQuantity,omitempty"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
}

// NewLineItem returns a blank row the way the edit screens create one:
// quantity 1, no price, default type.
func NewLineItem(position int) LineItem {
	return LineItem{
		Group:    position,
		Type:     "DÉBIT",
		Quantity: 1,
	}
}
