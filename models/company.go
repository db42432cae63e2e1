package models

// Company represents an issuing company (the letterhead a document is
// printed under; the business operates more than one legal entity).
type Company struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	ICE       string `json:"ice,omitempty"`
	RC        string `json:"rc,omitempty"` // registre de commerce
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateCompanyRequest represents the request body for creating a company
// Example: {"name": "MARBRERIE DE L'ATLAS SARL", "address": "Zone industrielle, Marrakech", "ice": "000011122233344"}
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	ICE     string `json:"ice,omitempty"`
	RC      string `json:"rc,omitempty"`
}

// CompanyListResponse represents the response for listing companies
type CompanyListResponse struct {
	Companies []Company `json:"companies"`
}
