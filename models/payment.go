package models

// Payment represents a payment received against an order
type Payment struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"orderId"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"` // cash, transfer, check
	Destination string  `json:"destination,omitempty"`
	PaidAt      string  `json:"paidAt"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// CreatePaymentRequest represents the request body for recording a payment
// Example: {"amount": 5000, "method": "transfer", "destination": "BMCE", "notes": "avance 50%"}
type CreatePaymentRequest struct {
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Destination string  `json:"destination,omitempty"`
	PaidAt      string  `json:"paidAt,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// PaymentListResponse represents the response for listing an order's payments
type PaymentListResponse struct {
	Payments  []Payment `json:"payments"`
	TotalPaid float64   `json:"totalPaid"`
}
