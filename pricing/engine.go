package pricing

import (
	"math"
	"strings"

	"marbrerie-gestion/models"
)

// Unit is the physical unit of measure a line item is priced in.
type Unit string

const (
	UnitM2    Unit = "M2"    // square meters
	UnitML    Unit = "ML"    // linear meters
	UnitTon   Unit = "TON"   // metric tons
	UnitM3    Unit = "M3"    // cubic meters
	UnitPiece Unit = "PIÉCE" // counted pieces
	UnitFlat  Unit = "F"     // flat fee
)

// massifDensity converts a MASSIF volume in m³ to metric tons.
const massifDensity = 2.7

// Product types priced per piece. MASSIF is deliberately absent: a solid
// massif is weighed, not counted (see ClassifyUnit).
var pieceTypes = map[string]bool{
	"FONTAINE": true,
	"AROSASSE": true,
	"VASQUE":   true,
	"CHEMINÉE": true,
	"GALÉ":     true,
	"DIVERS":   true,
}

// ClassifyUnit derives the unit of measure from the row's type and product.
// Rules are evaluated in priority order; the first match wins and an
// unrecognized type falls through to M2.
func ClassifyUnit(itemType, product string) Unit {
	switch {
	case itemType == "PLINTHE",
		itemType == "DOUBLE NEZ",
		strings.Contains(itemType, "ML"),
		strings.HasPrefix(product, "FINITION"):
		return UnitML
	case itemType == "BLOC", itemType == "MASSIF":
		return UnitTon
	case itemType == "VOYAGE":
		return UnitM3
	case pieceTypes[itemType]:
		return UnitPiece
	case itemType == "SERVICE" && !strings.HasPrefix(product, "COUPE"):
		return UnitFlat
	default:
		return UnitM2
	}
}

// rowContribution computes one row's raw quantity contribution, before unit
// scaling. Dimensions stay in centimeters here so grouped rows can be summed
// exactly and converted once.
func rowContribution(unit Unit, item models.LineItem) float64 {
	qty := num(item.Quantity)
	switch unit {
	case UnitM2:
		return val(item.Length) * val(item.Width) * qty
	case UnitML:
		return val(item.Length) * qty
	case UnitTon:
		if item.Type == "MASSIF" {
			// Volume in cm³; quantity does not participate for massifs.
			return val(item.Length) * val(item.Width) * val(item.Splicer)
		}
		return qty
	default:
		// M3, PIÉCE and F are entered directly in their final unit.
		return qty
	}
}

// convertTotal scales a summed raw contribution to the group's final unit.
// itemType is the type of the row that defines the group.
func convertTotal(unit Unit, itemType string, raw float64) float64 {
	switch unit {
	case UnitM2:
		return raw / 10000 // cm² -> m²
	case UnitML:
		return raw / 100 // cm -> m
	case UnitTon:
		if itemType == "MASSIF" {
			return raw / 1000000 * massifDensity // cm³ -> m³ -> tons
		}
		return raw
	default:
		return raw
	}
}

// CalculateItemTotals recalculates one row independently (the orders/quotes
// variant, run on every field edit). It returns a copy with unit,
// totalQuantity and totalPrice populated; all other fields are untouched.
func CalculateItemTotals(item models.LineItem) models.LineItem {
	unit := ClassifyUnit(item.Type, item.Product)
	total := round2(convertTotal(unit, item.Type, rowContribution(unit, item)))

	item.Unit = string(unit)
	item.TotalQuantity = &total
	item.TotalPrice = linePrice(total, item.UnitPrice)
	return item
}

// CalculateAllItemTotals runs the per-item calculation over every row
// (the CALCULER! command on orders and quotes).
func CalculateAllItemTotals(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, item := range items {
		out[i] = CalculateItemTotals(item)
	}
	return out
}

// CalculateGroupedTotals recalculates rows that may share a group number
// (the reception-slip variant). Rows in the same group are aggregated into
// one quantity and one price, attributed to the group's first row; the other
// rows of the group get blank derived fields. Row order is preserved.
func CalculateGroupedTotals(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	copy(out, items)

	// Bucket row indexes by group, keeping first-seen order within a bucket.
	// A row without a group stands alone under its 1-based position.
	buckets := make(map[int][]int)
	order := make([]int, 0, len(out))
	for i := range out {
		key := out[i].Group
		if key <= 0 {
			key = -(i + 1) // private key, cannot collide with real groups
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], i)
	}

	for _, key := range order {
		rows := buckets[key]
		first := &out[rows[0]]
		unit := ClassifyUnit(first.Type, first.Product)

		var raw float64
		for _, idx := range rows {
			raw += rowContribution(unit, out[idx])
		}
		total := round2(convertTotal(unit, first.Type, raw))

		first.Unit = string(unit)
		first.TotalQuantity = &total
		first.TotalPrice = linePrice(total, first.UnitPrice)

		for _, idx := range rows[1:] {
			out[idx].Unit = ""
			out[idx].TotalQuantity = nil
			out[idx].TotalPrice = nil
		}
	}

	return out
}

// CalculateDocumentTotals reduces line totals into document-level amounts.
// The only supported tax configurations are 0 (tax excluded) and 20
// (20% tax included). A free document short-circuits to zero.
func CalculateDocumentTotals(items []models.LineItem, taxRate float64, isFree bool) models.DocumentTotals {
	if isFree {
		return models.DocumentTotals{}
	}

	var taxable float64
	for _, item := range items {
		taxable += val(item.TotalPrice)
	}
	taxable = round2(taxable)

	var taxes float64
	if taxRate == 20 {
		taxes = round2(taxable * 0.2)
	}

	return models.DocumentTotals{
		TaxableAmount: taxable,
		TotalTaxes:    taxes,
		TotalAmount:   round2(taxable + taxes),
	}
}

// linePrice applies the total_price invariant: present quantity times a
// present, non-zero unit price, rounded to 2 decimals — otherwise nil.
// A price of zero is treated as "not yet priced", matching the screens.
func linePrice(totalQuantity float64, unitPrice *float64) *float64 {
	if unitPrice == nil || *unitPrice == 0 || math.IsNaN(*unitPrice) {
		return nil
	}
	price := round2(totalQuantity * *unitPrice)
	return &price
}

// val unwraps an optional numeric field, coercing absent or invalid values
// to zero so arithmetic never produces NaN.
func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return num(*p)
}

func num(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func round2(f float64) float64 {
	return math.Round(num(f)*100) / 100
}
