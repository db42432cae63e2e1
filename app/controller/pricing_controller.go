package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"marbrerie-gestion/models"
	"marbrerie-gestion/pricing"
)

// PricingController exposes the calculation engine as stateless endpoints,
// used by the document edit screens to refresh derived fields while typing
// (per-item) or on the explicit calculate command (grouped).
type PricingController struct{}

// NewPricingController creates a new PricingController
func NewPricingController() *PricingController {
	return &PricingController{}
}

// Calculate handles POST /admin/pricing/calculate
// Recomputes each row independently, then the document totals.
// Example request:
// {
//   "items": [{"type": "DÉBIT", "length": 100, "width": 50, "quantity": 2, "unitPrice": 10}],
//   "taxRate": 20
// }
// Example response:
// {
//   "items": [{..., "unit": "M2", "totalQuantity": 1, "totalPrice": 10}],
//   "totals": {"taxableAmount": 10, "totalTaxes": 2, "totalAmount": 12}
// }
func (c *PricingController) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Calculate: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	items := pricing.CalculateAllItemTotals(req.Items)
	totals := pricing.CalculateDocumentTotals(items, req.TaxRate, req.IsFree)

	writeJSON(w, http.StatusOK, models.CalculateItemsResponse{
		Items:  items,
		Totals: totals,
	})
}

// CalculateGrouped handles POST /admin/pricing/calculate-grouped
// Aggregates rows sharing a group number onto the group's first row,
// the behavior reception slips use.
func (c *PricingController) CalculateGrouped(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CalculateGrouped: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	items := pricing.CalculateGroupedTotals(req.Items)
	totals := pricing.CalculateDocumentTotals(items, req.TaxRate, req.IsFree)

	writeJSON(w, http.StatusOK, models.CalculateItemsResponse{
		Items:  items,
		Totals: totals,
	})
}
