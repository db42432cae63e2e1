package models

// Client represents a customer in the database
type Client struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CompanyID *int64 `json:"companyId,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	ICE       string `json:"ice,omitempty"` // Moroccan company tax identifier
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateClientRequest represents the request body for creating a client
// Example: {"name": "STÉ ATLAS TRAVAUX", "phone": "+212600000000", "ice": "001234567000089"}
type CreateClientRequest struct {
	Name      string `json:"name"`
	CompanyID *int64 `json:"companyId,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	ICE       string `json:"ice,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ClientListResponse represents the response for listing clients
type ClientListResponse struct {
	Clients []Client `json:"clients"`
}
