package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
)

// ReceptionSlipController handles HTTP requests for reception slips
type ReceptionSlipController struct {
	repository repository.ReceptionSlipRepositoryInterface
}

// NewReceptionSlipController creates a new ReceptionSlipController
func NewReceptionSlipController(repo repository.ReceptionSlipRepositoryInterface) *ReceptionSlipController {
	return &ReceptionSlipController{
		repository: repo,
	}
}

// Create handles POST /admin/reception-slips
// Example request:
// {
//   "companyId": 1,
//   "clientId": 5,
//   "items": [
//     {"group": 1, "type": "DÉBIT", "length": 100, "width": 100, "quantity": 1, "unitPrice": 20},
//     {"group": 1, "type": "DÉBIT", "length": 50, "width": 100, "quantity": 1}
//   ]
// }
func (c *ReceptionSlipController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateReceptionSlip: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateReceptionSlipRequest
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
		respondError(w, "CreateReceptionSlip", err)
		return
	}

	log.Printf("✅ CreateReceptionSlip: Successfully created reception slip %s", slip.Number)
	writeJSON(w, http.StatusCreated, slip)
}

// List handles GET /admin/reception-slips?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *ReceptionSlipController) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slips, err := c.repository.List(r.Context(), from, to)
	if err != nil {
		respondError(w, "ListReceptionSlips", err)
		return
	}

	writeJSON(w, http.StatusOK, models.ReceptionSlipListResponse{Slips: slips})
}

// Get handles GET /admin/reception-slips/:id
func (c *ReceptionSlipController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/reception-slips/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slip, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetReceptionSlip", err)
		return
	}

	writeJSON(w, http.StatusOK, slip)
}

// Update handles PUT /admin/reception-slips/:id
func (c *ReceptionSlipController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/reception-slips/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.UpdateReceptionSlipRequest
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
		respondError(w, "UpdateReceptionSlip", err)
		return
	}

	writeJSON(w, http.StatusOK, slip)
}

// Delete handles DELETE /admin/reception-slips/:id
func (c *ReceptionSlipController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/reception-slips/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteReceptionSlip", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Calculate handles POST /admin/reception-slips/:id/calculate
// Re-runs the grouped calculation on the stored rows and persists the result.
func (c *ReceptionSlipController) Calculate(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CalculateReceptionSlip: Received %s request to %s", r.Method, r.URL.Path)

	id, err := subPathID(r, "/admin/reception-slips/", "/calculate")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slip, err := c.repository.Recalculate(r.Context(), id)
	if err != nil {
		respondError(w, "CalculateReceptionSlip", err)
		return
	}

	log.Printf("✅ CalculateReceptionSlip: Reception slip id=%d recalculated", id)
	writeJSON(w, http.StatusOK, slip)
}
