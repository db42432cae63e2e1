package models

// DocumentTotals holds the document-level reduction over line totals.
// Example: {"taxableAmount": 1250.0, "totalTaxes": 250.0, "totalAmount": 1500.0}
type DocumentTotals struct {
	TaxableAmount float64 `json:"taxableAmount"`
	TotalTaxes    float64 `json:"totalTaxes"`
	TotalAmount   float64 `json:"totalAmount"`
}

// CalculateItemsRequest is the body of the stateless CALCULER! endpoints
// used by the document edit screens.
// Example: {"items": [{"type": "DÉBIT", "length": 100, "width": 50, "quantity": 2, "unitPrice": 10}], "taxRate": 20}
type CalculateItemsRequest struct {
	Items   []LineItem `json:"items"`
	TaxRate float64    `json:"taxRate"`
	IsFree  bool       `json:"isFree"`
}

// CalculateItemsResponse returns the recalculated rows plus document totals.
type CalculateItemsResponse struct {
	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`
}
