package pricing

import (
	"math"
	"testing"

	"marbrerie-gestion/models"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func fp(f float64) *float64 { return &f }

func TestClassifyUnit_PriorityOrder(t *testing.T) {
	cases := []struct {
		itemType string
		product  string
		want     Unit
	}{
		{"PLINTHE", "", UnitML},
		{"DOUBLE NEZ", "", UnitML},
		{"ESCALIER ML", "", UnitML},
		{"DÉBIT", "FINITION BORD POLI", UnitML},
		{"BLOC", "", UnitTon},
		{"MASSIF", "", UnitTon},
		{"VOYAGE", "", UnitM3},
		{"FONTAINE", "", UnitPiece},
		{"AROSASSE", "", UnitPiece},
		{"VASQUE", "", UnitPiece},
		{"CHEMINÉE", "", UnitPiece},
		{"GALÉ", "", UnitPiece},
		{"DIVERS", "", UnitPiece},
		{"SERVICE", "TRANSPORT", UnitFlat},
		{"SERVICE", "COUPE SPÉCIALE", UnitM2},
		{"DÉBIT", "", UnitM2},
		{"TRANCHE", "", UnitM2},
		{"CARREAUX", "", UnitM2},
		{"ESCALIER", "", UnitM2},
		{"N'IMPORTE QUOI", "", UnitM2},
		{"", "", UnitM2},
	}

	for _, tc := range cases {
		got := ClassifyUnit(tc.itemType, tc.product)
		if got != tc.want {
			t.Errorf("ClassifyUnit(%q, %q) = %q, want %q", tc.itemType, tc.product, got, tc.want)
		}
		// Determinism: same inputs, same output.
		if again := ClassifyUnit(tc.itemType, tc.product); again != got {
			t.Errorf("ClassifyUnit(%q, %q) not deterministic: %q then %q", tc.itemType, tc.product, got, again)
		}
	}
}

func TestCalculateItemTotals_SquareMeters(t *testing.T) {
	item := CalculateItemTotals(models.LineItem{
		Type:      "DÉBIT",
		Length:    fp(100),
		Width:     fp(50),
		Quantity:  2,
		UnitPrice: fp(10),
	})

	if item.Unit != "M2" {
		t.Fatalf("unit = %q, want M2", item.Unit)
	}
	nearlyEqual(t, "totalQuantity", *item.TotalQuantity, 1.0)
	nearlyEqual(t, "totalPrice", *item.TotalPrice, 10.0)
}

func TestCalculateItemTotals_LinearMeters(t *testing.T) {
	item := CalculateItemTotals(models.LineItem{
		Type:      "PLINTHE",
		Length:    fp(250),
		Quantity:  4,
		UnitPrice: fp(5),
	})

	if item.Unit != "ML" {
		t.Fatalf("unit = %q, want ML", item.Unit)
	}
	nearlyEqual(t, "totalQuantity", *item.TotalQuantity, 10.0)
	nearlyEqual(t, "totalPrice", *item.TotalPrice, 50.0)
}

func TestCalculateItemTotals_PassThroughUnits(t *testing.T) {
	bloc := CalculateItemTotals(models.LineItem{Type: "BLOC", Quantity: 3, UnitPrice: fp(100)})
	nearlyEqual(t, "BLOC totalQuantity", *bloc.TotalQuantity, 3)
	nearlyEqual(t, "BLOC totalPrice", *bloc.TotalPrice, 300)

	voyage := CalculateItemTotals(models.LineItem{Type: "VOYAGE", Quantity: 2, UnitPrice: fp(400)})
	nearlyEqual(t, "VOYAGE totalQuantity", *voyage.TotalQuantity, 2)
	nearlyEqual(t, "VOYAGE totalPrice", *voyage.TotalPrice, 800)

	vasque := CalculateItemTotals(models.LineItem{Type: "VASQUE", Quantity: 5, UnitPrice: fp(150)})
	nearlyEqual(t, "VASQUE totalQuantity", *vasque.TotalQuantity, 5)
	nearlyEqual(t, "VASQUE totalPrice", *vasque.TotalPrice, 750)

	service := CalculateItemTotals(models.LineItem{Type: "SERVICE", Product: "POSE", Quantity: 1, UnitPrice: fp(1200)})
	if service.Unit != "F" {
		t.Fatalf("unit = %q, want F", service.Unit)
	}
	nearlyEqual(t, "SERVICE totalPrice", *service.TotalPrice, 1200)
}

func TestCalculateItemTotals_MassifTonnage(t *testing.T) {
	// 200cm x 100cm x 10cm = 0.2 m³ at 2.7 t/m³ = 0.54 tons.
	item := CalculateItemTotals(models.LineItem{
		Type:      "MASSIF",
		Length:    fp(200),
		Width:     fp(100),
		Splicer:   fp(10),
		Quantity:  1,
		UnitPrice: fp(1000),
	})

	if item.Unit != "TON" {
		t.Fatalf("unit = %q, want TON", item.Unit)
	}
	nearlyEqual(t, "totalQuantity", *item.TotalQuantity, 0.54)
	nearlyEqual(t, "totalPrice", *item.TotalPrice, 540)
}

func TestCalculateItemTotals_MissingDimensionsCoerceToZero(t *testing.T) {
	item := CalculateItemTotals(models.LineItem{Type: "DÉBIT", Quantity: 3, UnitPrice: fp(10)})

	nearlyEqual(t, "totalQuantity", *item.TotalQuantity, 0)
	// The price is present, so the invariant still applies: 0 × 10 = 0.
	nearlyEqual(t, "totalPrice", *item.TotalPrice, 0)
}

func TestCalculateItemTotals_NaNInputNeverPropagates(t *testing.T) {
	nan := math.NaN()
	item := CalculateItemTotals(models.LineItem{
		Type:      "DÉBIT",
		Length:    &nan,
		Width:     fp(50),
		Quantity:  2,
		UnitPrice: fp(10),
	})

	if math.IsNaN(*item.TotalQuantity) {
		t.Fatal("totalQuantity is NaN")
	}
	nearlyEqual(t, "totalQuantity", *item.TotalQuantity, 0)
}

func TestCalculateItemTotals_Idempotent(t *testing.T) {
	item := models.LineItem{Type: "TRANCHE", Length: fp(300), Width: fp(150), Quantity: 1, UnitPrice: fp(80)}

	once := CalculateItemTotals(item)
	twice := CalculateItemTotals(once)

	nearlyEqual(t, "totalQuantity", *twice.TotalQuantity, *once.TotalQuantity)
	nearlyEqual(t, "totalPrice", *twice.TotalPrice, *once.TotalPrice)
}

func TestCalculateGroupedTotals_AggregatesIntoFirstRow(t *testing.T) {
	items := []models.LineItem{
		{Group: 1, Type: "DÉBIT", Length: fp(100), Width: fp(100), Quantity: 1, UnitPrice: fp(20)},
		{Group: 1, Type: "DÉBIT", Length: fp(50), Width: fp(100), Quantity: 1, UnitPrice: fp(20)},
	}

	out := CalculateGroupedTotals(items)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Unit != "M2" {
		t.Fatalf("first row unit = %q, want M2", out[0].Unit)
	}
	nearlyEqual(t, "first row totalQuantity", *out[0].TotalQuantity, 1.5)
	nearlyEqual(t, "first row totalPrice", *out[0].TotalPrice, 30.0)

	if out[1].TotalQuantity != nil || out[1].TotalPrice != nil {
		t.Fatal("second row of the group should have blank derived fields")
	}
}

func TestCalculateGroupedTotals_UngroupedRowsStandAlone(t *testing.T) {
	items := []models.LineItem{
		{Type: "PLINTHE", Length: fp(250), Quantity: 4, UnitPrice: fp(5)},
		{Type: "BLOC", Quantity: 3, UnitPrice: fp(100)},
	}

	out := CalculateGroupedTotals(items)

	nearlyEqual(t, "row 0 totalQuantity", *out[0].TotalQuantity, 10.0)
	nearlyEqual(t, "row 0 totalPrice", *out[0].TotalPrice, 50.0)
	nearlyEqual(t, "row 1 totalQuantity", *out[1].TotalQuantity, 3)
	nearlyEqual(t, "row 1 totalPrice", *out[1].TotalPrice, 300)
}

func TestCalculateGroupedTotals_SingletonMatchesPerItem(t *testing.T) {
	item := models.LineItem{Group: 7, Type: "CARREAUX", Length: fp(60), Width: fp(60), Quantity: 10, UnitPrice: fp(45)}

	grouped := CalculateGroupedTotals([]models.LineItem{item})
	single := CalculateItemTotals(item)

	nearlyEqual(t, "totalQuantity", *grouped[0].TotalQuantity, *single.TotalQuantity)
	nearlyEqual(t, "totalPrice", *grouped[0].TotalPrice, *single.TotalPrice)
}

func TestCalculateGroupedTotals_MassifGroup(t *testing.T) {
	// Two massif slabs cut from one reference: volumes sum before the
	// density conversion. (100*50*10 + 100*50*10) cm³ = 0.1 m³ -> 0.27 t.
	items := []models.LineItem{
		{Group: 2, Type: "MASSIF", Length: fp(100), Width: fp(50), Splicer: fp(10), Quantity: 1, UnitPrice: fp(2000)},
		{Group: 2, Type: "MASSIF", Length: fp(100), Width: fp(50), Splicer: fp(10), Quantity: 1},
	}

	out := CalculateGroupedTotals(items)

	if out[0].Unit != "TON" {
		t.Fatalf("unit = %q, want TON", out[0].Unit)
	}
	nearlyEqual(t, "totalQuantity", *out[0].TotalQuantity, 0.27)
	nearlyEqual(t, "totalPrice", *out[0].TotalPrice, 540)
}

func TestCalculateGroupedTotals_MissingPriceYieldsNilNotZero(t *testing.T) {
	items := []models.LineItem{
		{Group: 1, Type: "DÉBIT", Length: fp(100), Width: fp(100), Quantity: 1},
	}

	out := CalculateGroupedTotals(items)

	nearlyEqual(t, "totalQuantity", *out[0].TotalQuantity, 1.0)
	if out[0].TotalPrice != nil {
		t.Fatalf("totalPrice = %v, want nil when unit price is absent", *out[0].TotalPrice)
	}

	// A zero price behaves like an absent one (falsy check preserved).
	items[0].UnitPrice = fp(0)
	out = CalculateGroupedTotals(items)
	if out[0].TotalPrice != nil {
		t.Fatalf("totalPrice = %v, want nil when unit price is zero", *out[0].TotalPrice)
	}
}

func TestCalculateGroupedTotals_PreservesRowOrder(t *testing.T) {
	items := []models.LineItem{
		{Group: 2, Type: "DÉBIT", Product: "NOIR MARQUINA", Length: fp(100), Width: fp(50), Quantity: 1, UnitPrice: fp(10)},
		{Group: 1, Type: "PLINTHE", Product: "BEIGE ATLAS", Length: fp(200), Quantity: 2, UnitPrice: fp(5)},
		{Group: 2, Type: "DÉBIT", Product: "NOIR MARQUINA", Length: fp(100), Width: fp(50), Quantity: 1, UnitPrice: fp(10)},
	}

	out := CalculateGroupedTotals(items)

	if out[0].Product != "NOIR MARQUINA" || out[1].Product != "BEIGE ATLAS" || out[2].Product != "NOIR MARQUINA" {
		t.Fatal("row order changed across grouping")
	}
	// Group 2 aggregates on its first row (index 0), not on index 2.
	nearlyEqual(t, "group 2 totalQuantity", *out[0].TotalQuantity, 1.0)
	if out[2].TotalQuantity != nil {
		t.Fatal("later row of group 2 should be blank")
	}
	nearlyEqual(t, "group 1 totalQuantity", *out[1].TotalQuantity, 4.0)
}

func TestCalculateDocumentTotals_FreeDocumentShortCircuits(t *testing.T) {
	items := []models.LineItem{
		{Type: "BLOC", Quantity: 3, UnitPrice: fp(100), TotalPrice: fp(300)},
	}

	totals := CalculateDocumentTotals(items, 20, true)

	nearlyEqual(t, "taxableAmount", totals.TaxableAmount, 0)
	nearlyEqual(t, "totalTaxes", totals.TotalTaxes, 0)
	nearlyEqual(t, "totalAmount", totals.TotalAmount, 0)
}

func TestCalculateDocumentTotals_TaxIncludedAndExcluded(t *testing.T) {
	items := []models.LineItem{
		{TotalPrice: fp(100)},
		{TotalPrice: fp(150)},
		{TotalPrice: nil}, // unpriced row counts as zero
	}

	taxed := CalculateDocumentTotals(items, 20, false)
	nearlyEqual(t, "taxed taxableAmount", taxed.TaxableAmount, 250)
	nearlyEqual(t, "taxed totalTaxes", taxed.TotalTaxes, 50)
	nearlyEqual(t, "taxed totalAmount", taxed.TotalAmount, 300)

	untaxed := CalculateDocumentTotals(items, 0, false)
	nearlyEqual(t, "untaxed taxableAmount", untaxed.TaxableAmount, 250)
	nearlyEqual(t, "untaxed totalTaxes", untaxed.TotalTaxes, 0)
	nearlyEqual(t, "untaxed totalAmount", untaxed.TotalAmount, 250)
}

func TestCalculateDocumentTotals_Deterministic(t *testing.T) {
	items := []models.LineItem{{TotalPrice: fp(99.99)}, {TotalPrice: fp(0.01)}}

	first := CalculateDocumentTotals(items, 20, false)
	second := CalculateDocumentTotals(items, 20, false)

	if first != second {
		t.Fatalf("results differ across identical calls: %+v vs %+v", first, second)
	}
}

func TestCalculateAllItemTotals_DoesNotMutateInput(t *testing.T) {
	items := []models.LineItem{
		{Type: "DÉBIT", Length: fp(100), Width: fp(50), Quantity: 2, UnitPrice: fp(10)},
	}

	out := CalculateAllItemTotals(items)

	if items[0].TotalQuantity != nil {
		t.Fatal("input slice was mutated")
	}
	nearlyEqual(t, "output totalQuantity", *out[0].TotalQuantity, 1.0)
}
