package models

// Quote represents a price quote (devis)
type Quote struct {
	ID               int64   `json:"id"`
	Number           string  `json:"number"`
	CompanyID        int64   `json:"companyId"`
	ClientID         int64   `json:"clientId"`
	Date             string  `json:"date"`
	Status           string  `json:"status"` // draft, sent, accepted, rejected, converted
	TaxRate          float64 `json:"taxRate"`
	IsFree           bool    `json:"isFree"`
	Currency         string  `json:"currency"`
	ValidityDays     int     `json:"validityDays,omitempty"`
	ConvertedOrderID *int64  `json:"convertedOrderId,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// CreateQuoteRequest represents the request body for creating a quote
// Example: {"companyId": 1, "clientId": 3, "taxRate": 0, "validityDays": 30, "items": [...]}
type CreateQuoteRequest struct {
	CompanyID    int64      `json:"companyId"`
	ClientID     int64      `json:"clientId"`
	Date         string     `json:"date,omitempty"`
	TaxRate      float64    `json:"taxRate"`
	IsFree       bool       `json:"isFree,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	ValidityDays int        `json:"validityDays,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Items        []LineItem `json:"items"`
}

// UpdateQuoteRequest replaces the quote header and its full item list
type UpdateQuoteRequest struct {
	ClientID     int64      `json:"clientId"`
	Date         string     `json:"date,omitempty"`
	Status       string     `json:"status,omitempty"`
	TaxRate      float64    `json:"taxRate"`
	IsFree       bool       `json:"isFree,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	ValidityDays int        `json:"validityDays,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Items        []LineItem `json:"items"`
}

// QuoteResponse represents the response for a single quote with its items
type QuoteResponse struct {
	Quote
	Client *Client        `json:"client,omitempty"`
	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`
}

// QuoteListItem represents a quote in a list response
type QuoteListItem struct {
	Quote
	ClientName  string  `json:"clientName,omitempty"`
	ItemCount   int     `json:"itemCount"`
	TotalAmount float64 `json:"totalAmount"`
}

// QuoteListResponse represents the response for listing quotes
type QuoteListResponse struct {
	Quotes []QuoteListItem `json:"quotes"`
}
