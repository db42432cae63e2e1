package models

// ReturnSlip represents a return slip (bon de retour): material physically
// returned by a client. Return rows carry no pricing; amounts are settled on
// the source document when it is amended.
type ReturnSlip struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	CompanyID   int64  `json:"companyId"`
	ClientID    int64  `json:"clientId"`
	OrderNumber string `json:"orderNumber,omitempty"` // source document, free reference
	Date        string `json:"date"`
	Status      string `json:"status"` // draft, received
	Reason      string `json:"reason,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ReturnSlipItem represents one returned row
type ReturnSlipItem struct {
	ID       int64    `json:"id,omitempty"`
	Type     string   `json:"type"`
	Product  string   `json:"product,omitempty"`
	State    string   `json:"state,omitempty"`
	Length   *float64 `json:"length,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Quantity float64  `json:"quantity"`
}

// CreateReturnSlipRequest represents the request body for creating a return slip
// Example: {"companyId": 1, "clientId": 3, "orderNumber": "CMD-2026-0012", "reason": "casse transport", "items": [{"type": "CARREAUX", "product": "BEIGE ATLAS", "quantity": 12}]}
type CreateReturnSlipRequest struct {
	CompanyID   int64            `json:"companyId"`
	ClientID    int64            `json:"clientId"`
	OrderNumber string           `json:"orderNumber,omitempty"`
	Date        string           `json:"date,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Items       []ReturnSlipItem `json:"items"`
}

// UpdateReturnSlipRequest replaces the slip header and its full item list
type UpdateReturnSlipRequest struct {
	ClientID    int64            `json:"clientId"`
	OrderNumber string           `json:"orderNumber,omitempty"`
	Date        string           `json:"date,omitempty"`
	Status      string           `json:"status,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Items       []ReturnSlipItem `json:"items"`
}

// ReturnSlipResponse represents the response for a single return slip
type ReturnSlipResponse struct {
	ReturnSlip
	Client *Client          `json:"client,omitempty"`
	Items  []ReturnSlipItem `json:"items"`
}

// ReturnSlipListItem represents a return slip in a list response
type ReturnSlipListItem struct {
	ReturnSlip
	ClientName string `json:"clientName,omitempty"`
	ItemCount  int    `json:"itemCount"`
}

// ReturnSlipListResponse represents the response for listing return slips
type ReturnSlipListResponse struct {
	Slips []ReturnSlipListItem `json:"slips"`
}
