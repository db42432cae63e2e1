package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marbrerie-gestion/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeCalcResponse(t *testing.T, rec *httptest.ResponseRecorder) models.CalculateItemsResponse {
	t.Helper()
	var resp models.CalculateItemsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestCalculate_RecomputesRowAndTotals(t *testing.T) {
	c := NewPricingController()

	rec := postJSON(t, c.Calculate, `{
		"items": [{"type": "DÉBIT", "length": 100, "width": 50, "quantity": 2, "unitPrice": 10}],
		"taxRate": 20
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	resp := decodeCalcResponse(t, rec)
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}

	item := resp.Items[0]
	if item.Unit != "M2" {
		t.Errorf("unit = %q, want M2", item.Unit)
	}
	if item.TotalQuantity == nil || *item.TotalQuantity != 1 {
		t.Errorf("totalQuantity = %v, want 1", item.TotalQuantity)
	}
	if item.TotalPrice == nil || *item.TotalPrice != 10 {
		t.Errorf("totalPrice = %v, want 10", item.TotalPrice)
	}
	if resp.Totals.TaxableAmount != 10 || resp.Totals.TotalTaxes != 2 || resp.Totals.TotalAmount != 12 {
		t.Errorf("totals = %+v, want 10/2/12", resp.Totals)
	}
}

func TestCalculate_InvalidBody(t *testing.T) {
	c := NewPricingController()

	rec := postJSON(t, c.Calculate, `{"items": [`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCalculate_FreeDocumentZeroesTotals(t *testing.T) {
	c := NewPricingController()

	rec := postJSON(t, c.Calculate, `{
		"items": [{"type": "DÉBIT", "length": 100, "width": 50, "quantity": 2, "unitPrice": 10}],
		"taxRate": 20,
		"isFree": true
	}`)

	resp := decodeCalcResponse(t, rec)
	if resp.Totals.TaxableAmount != 0 || resp.Totals.TotalTaxes != 0 || resp.Totals.TotalAmount != 0 {
		t.Errorf("totals = %+v, want all zero for free document", resp.Totals)
	}
}

func TestCalculateGrouped_AggregatesOntoFirstRow(t *testing.T) {
	c := NewPricingController()

	rec := postJSON(t, c.CalculateGrouped, `{
		"items": [
			{"group": 1, "type": "DÉBIT", "length": 100, "width": 100, "quantity": 1, "unitPrice": 20},
			{"group": 1, "type": "DÉBIT", "length": 50, "width": 100, "quantity": 1}
		],
		"taxRate": 0
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	resp := decodeCalcResponse(t, rec)
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}

	first, second := resp.Items[0], resp.Items[1]
	if first.TotalQuantity == nil || *first.TotalQuantity != 1.5 {
		t.Errorf("first row totalQuantity = %v, want 1.5", first.TotalQuantity)
	}
	if first.TotalPrice == nil || *first.TotalPrice != 30 {
		t.Errorf("first row totalPrice = %v, want 30", first.TotalPrice)
	}
	if second.TotalQuantity != nil || second.TotalPrice != nil {
		t.Errorf("second row should be blank, got qty=%v price=%v", second.TotalQuantity, second.TotalPrice)
	}
	if resp.Totals.TotalAmount != 30 {
		t.Errorf("totalAmount = %v, want 30", resp.Totals.TotalAmount)
	}
}
