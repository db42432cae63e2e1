package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
)

// CompanyController handles HTTP requests for issuing companies
type CompanyController struct {
	repository repository.CompanyRepositoryInterface
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(repo repository.CompanyRepositoryInterface) *CompanyController {
	return &CompanyController{
		repository: repo,
	}
}

// Create handles POST /admin/companies
func (c *CompanyController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateCompany: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	company, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		respondError(w, "CreateCompany", err)
		return
	}

	writeJSON(w, http.StatusCreated, company)
}

// List handles GET /admin/companies
func (c *CompanyController) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.repository.List(r.Context())
	if err != nil {
		respondError(w, "ListCompanies", err)
		return
	}

	writeJSON(w, http.StatusOK, models.CompanyListResponse{Companies: companies})
}

// Get handles GET /admin/companies/:id
func (c *CompanyController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/companies/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	company, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetCompany", err)
		return
	}

	writeJSON(w, http.StatusOK, company)
}

// Update handles PUT /admin/companies/:id
func (c *CompanyController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/companies/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	company, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, "UpdateCompany", err)
		return
	}

	writeJSON(w, http.StatusOK, company)
}

// Delete handles DELETE /admin/companies/:id
func (c *CompanyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/companies/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteCompany", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
