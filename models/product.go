package models

// Product represents a stone reference in the database
type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"` // MARBRE, GRANIT, TRAVERTIN, PIERRE
	Origin    string `json:"origin,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	// Image endpoints (populated when a photo has been uploaded)
	ImageUrlThumb  string `json:"imageUrlThumb,omitempty"`
	ImageUrlMedium string `json:"imageUrlMedium,omitempty"`
}

// CreateProductRequest represents the request body for creating a product
// Example: {"name": "NOIR MARQUINA", "category": "MARBRE", "origin": "Espagne"}
type CreateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Origin   string `json:"origin,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

// ProductFilter holds the query parameters of the product filter endpoint
type ProductFilter struct {
	Query    string
	Category string
	Active   *bool
}

// ProductListResponse represents the response for listing products
type ProductListResponse struct {
	Products []Product `json:"products"`
}
