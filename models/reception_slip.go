package models

// ReceptionSlip represents a reception slip (bon de réception): material
// received against a cataloged reference. Its rows use the grouped
// calculation — several pieces cut from one reference share a group number
// and are billed as one aggregate line.
type ReceptionSlip struct {
	ID        int64   `json:"id"`
	Number    string  `json:"number"`
	CompanyID int64   `json:"companyId"`
	ClientID  int64   `json:"clientId"`
	Date      string  `json:"date"`
	Status    string  `json:"status"` // draft, received, billed
	TaxRate   float64 `json:"taxRate"`
	IsFree    bool    `json:"isFree"`
	Currency  string  `json:"currency"`
	Driver    string  `json:"driver,omitempty"`
	Vehicle   string  `json:"vehicle,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreateReceptionSlipRequest represents the request body for creating a
// reception slip. Unlike orders, derived fields are only computed on the
// explicit calculate command or on save — never per keystroke — because the
// aggregation depends on sibling rows.
// Example: {"companyId": 1, "clientId": 5, "items": [{"group": 1, "type": "DÉBIT", "length": 100, "width": 100, "quantity": 1, "unitPrice": 20}, {"group": 1, "type": "DÉBIT", "length": 50, "width": 100, "quantity": 1}]}
type CreateReceptionSlipRequest struct {
	CompanyID int64      `json:"companyId"`
	ClientID  int64      `json:"clientId"`
	Date      string     `json:"date,omitempty"`
	TaxRate   float64    `json:"taxRate"`
	IsFree    bool       `json:"isFree,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	Driver    string     `json:"driver,omitempty"`
	Vehicle   string     `json:"vehicle,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Items     []LineItem `json:"items"`
}

// UpdateReceptionSlipRequest replaces the slip header and its full item list
type UpdateReceptionSlipRequest struct {
	ClientID int64      `json:"clientId"`
	Date     string     `json:"date,omitempty"`
	Status   string     `json:"status,omitempty"`
	TaxRate  float64    `json:"taxRate"`
	IsFree   bool       `json:"isFree,omitempty"`
	Currency string     `json:"currency,omitempty"`
	Driver   string     `json:"driver,omitempty"`
	Vehicle  string     `json:"vehicle,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	Items    []LineItem `json:"items"`
}

// ReceptionSlipResponse represents the response for a single reception slip
type ReceptionSlipResponse struct {
	ReceptionSlip
	Client *Client        `json:"client,omitempty"`
	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`
}

// ReceptionSlipListItem represents a reception slip in a list response
type ReceptionSlipListItem struct {
	ReceptionSlip
	ClientName  string  `json:"clientName,omitempty"`
	ItemCount   int     `json:"itemCount"`
	TotalAmount float64 `json:"totalAmount"`
}

// ReceptionSlipListResponse represents the response for listing reception slips
type ReceptionSlipListResponse struct {
	Slips []ReceptionSlipListItem `json:"slips"`
}
