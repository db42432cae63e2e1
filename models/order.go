package models

// Order represents a confirmed customer order (bon de commande)
type Order struct {
	ID        int64   `json:"id"`
	Number    string  `json:"number"`
	CompanyID int64   `json:"companyId"`
	ClientID  int64   `json:"clientId"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Status    string  `json:"status"` // draft, confirmed, delivered, canceled
	TaxRate   float64 `json:"taxRate"` // 0 or 20
	IsFree    bool    `json:"isFree"`
	Currency  string  `json:"currency"` // DHs or €
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreateOrderRequest represents the request body for creating an order.
// Line totals are recalculated server-side before saving, so derived fields
// in the submitted items are ignored.
// Example:
//
//	{
//	  "companyId": 1,
//	  "clientId": 3,
//	  "date": "2026-08-31",
//	  "taxRate": 20,
//	  "items": [
//	    {"type": "DÉBIT", "product": "NOIR MARQUINA", "length": 100, "width": 50, "quantity": 2, "unitPrice": 450}
//	  ]
//	}
type CreateOrderRequest struct {
	CompanyID int64      `json:"companyId"`
	ClientID  int64      `json:"clientId"`
	Date      string     `json:"date,omitempty"`
	TaxRate   float64    `json:"taxRate"`
	IsFree    bool       `json:"isFree,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Items     []LineItem `json:"items"`
}

// UpdateOrderRequest replaces the order header and its full item list
type UpdateOrderRequest struct {
	ClientID int64      `json:"clientId"`
	Date     string     `json:"date,omitempty"`
	Status   string     `json:"status,omitempty"`
	TaxRate  float64    `json:"taxRate"`
	IsFree   bool       `json:"isFree,omitempty"`
	Currency string     `json:"currency,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	Items    []LineItem `json:"items"`
}

// OrderResponse represents the response for a single order with its items
// Example response:
//
//	{
//	  "id": 12,
//	  "number": "CMD-2026-0012",
//	  "companyId": 1,
//	  "clientId": 3,
//	  "date": "2026-08-31",
//	  "status": "confirmed",
//	  "taxRate": 20,
//	  "currency": "DHs",
//	  "items": [...],
//	  "totals": {"taxableAmount": 450.0, "totalTaxes": 90.0, "totalAmount": 540.0}
//	}
type OrderResponse struct {
	Order
	Client *Client        `json:"client,omitempty"`
	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`
}

// OrderListItem represents an order in a list response
type OrderListItem struct {
	Order
	ClientName  string  `json:"clientName,omitempty"`
	ItemCount   int     `json:"itemCount"`
	TotalAmount float64 `json:"totalAmount"`
	AmountPaid  float64 `json:"amountPaid"`
}

// OrderListResponse represents the response for listing orders
type OrderListResponse struct {
	Orders []OrderListItem `json:"orders"`
}
