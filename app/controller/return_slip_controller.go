package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
)

// ReturnSlipController handles HTTP requests for return slips
type ReturnSlipController struct {
	repository repository.ReturnSlipRepositoryInterface
}

// NewReturnSlipController creates a new ReturnSlipController
func NewReturnSlipController(repo repository.ReturnSlipRepositoryInterface) *ReturnSlipController {
	return &ReturnSlipController{
		repository: repo,
	}
}

// Create handles POST /admin/return-slips
// Example request: {"companyId": 1, "clientId": 3, "orderNumber": "CMD-2026-0012", "reason": "casse transport", "items": [{"type": "CARREAUX", "product": "BEIGE ATLAS", "quantity": 12}]}
func (c *ReturnSlipController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateReturnSlip: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateReturnSlipRequest
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

	slip, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		respondError(w, "CreateReturnSlip", err)
		return
	}

	log.Printf("✅ CreateReturnSlip: Successfully created return slip %s", slip.Number)
	writeJSON(w, http.StatusCreated, slip)
}

// List handles GET /admin/return-slips?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *ReturnSlipController) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slips, err := c.repository.List(r.Context(), from, to)
	if err != nil {
		respondError(w, "ListReturnSlips", err)
		return
	}

	writeJSON(w, http.StatusOK, models.ReturnSlipListResponse{Slips: slips})
}

// Get handles GET /admin/return-slips/:id
func (c *ReturnSlipController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/return-slips/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slip, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetReturnSlip", err)
		return
	}

	writeJSON(w, http.StatusOK, slip)
}

// Update handles PUT /admin/return-slips/:id
func (c *ReturnSlipController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/return-slips/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.UpdateReturnSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ClientID == 0 {
		http.Error(w, "clientId is required", http.StatusBadRequest)
		return
	}

	slip, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, "UpdateReturnSlip", err)
		return
	}

	writeJSON(w, http.StatusOK, slip)
}

// Delete handles DELETE /admin/return-slips/:id
func (c *ReturnSlipController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/return-slips/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteReturnSlip", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
