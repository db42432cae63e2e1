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

// ClientController handles HTTP requests for clients
type ClientController struct {
	repository repository.ClientRepositoryInterface
}

// NewClientController creates a new ClientController
func NewClientController(repo repository.ClientRepositoryInterface) *ClientController {
	return &ClientController{
		repository: repo,
	}
}

// Create handles POST /admin/clients
// Example request:
// {
//   "name": "Entreprise Atlas",
//   "phone": "0661000000",
//   "ice": "001234567000089"
// }
func (c *ClientController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateClient: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateClient: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	client, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		respondError(w, "CreateClient", err)
		return
	}

	log.Printf("✅ CreateClient: Successfully created client id=%d", client.ID)
	writeJSON(w, http.StatusCreated, client)
}

// List handles GET /admin/clients?q=search
func (c *ClientController) List(w http.ResponseWriter, r *http.Request) {
	clients, err := c.repository.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, "ListClients", err)
		return
	}

	writeJSON(w, http.StatusOK, models.ClientListResponse{Clients: clients})
}

// Get handles GET /admin/clients/:id
func (c *ClientController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/clients/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetClient", err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Update handles PUT /admin/clients/:id
func (c *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/clients/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	client, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, "UpdateClient", err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Delete handles DELETE /admin/clients/:id
func (c *ClientController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/clients/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteClient", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
