package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
)

// QuoteController handles HTTP requests for quotes
type QuoteController struct {
	repository repository.QuoteRepositoryInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(repo repository.QuoteRepositoryInterface) *QuoteController {
	return &QuoteController{
		repository: repo,
	}
}

// Create handles POST /admin/quotes
func (c *QuoteController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateQuote: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.CompanyID == 0 {
		http.Error(w, "companyId is required", http.StatusBadRequest)
		return
	}
	if req.ClientID == 0 {
		http.Error(w, "clientId is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "items are required", http.StatusBadRequest)
		return
	}

	quote, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		respondError(w, "CreateQuote", err)
		return
	}

	log.Printf("✅ CreateQuote: Successfully created quote %s", quote.Number)
	writeJSON(w, http.StatusCreated, quote)
}

// List handles GET /admin/quotes?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *QuoteController) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quotes, err := c.repository.List(r.Context(), from, to)
	if err != nil {
		respondError(w, "ListQuotes", err)
		return
	}

	writeJSON(w, http.StatusOK, models.QuoteListResponse{Quotes: quotes})
}

// Get handles GET /admin/quotes/:id
func (c *QuoteController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/quotes/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetQuote", err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// Update handles PUT /admin/quotes/:id
func (c *QuoteController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/quotes/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ClientID == 0 {
		http.Error(w, "clientId is required", http.StatusBadRequest)
		return
	}

	quote, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, "UpdateQuote", err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// Delete handles DELETE /admin/quotes/:id
func (c *QuoteController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/quotes/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteQuote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Convert handles POST /admin/quotes/:id/convert
// Creates an order carrying the quote's frozen rows and marks the quote converted.
func (c *QuoteController) Convert(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ConvertQuote: Received %s request to %s", r.Method, r.URL.Path)

	id, err := subPathID(r, "/admin/quotes/", "/convert")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := c.repository.ConvertToOrder(r.Context(), id)
	if err != nil {
		respondError(w, "ConvertQuote", err)
		return
	}

	log.Printf("✅ ConvertQuote: Quote id=%d converted to order %s", id, order.Number)
	writeJSON(w, http.StatusCreated, order)
}
