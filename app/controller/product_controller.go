package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
	"marbrerie-gestion/service"
)

// Max accepted upload size for product photos (10 MB)
const maxImageUploadBytes = 10 << 20

// ProductController handles HTTP requests for stone references
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{
		repository: repo,
	}
}

// Create handles POST /admin/products
// Example request: {"name": "NOIR MARQUINA", "category": "MARBRE", "origin": "Espagne"}
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	product, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		respondError(w, "CreateProduct", err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Filter handles GET /admin/products?q=noir&category=MARBRE&active=true
func (c *ProductController) Filter(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if activeStr := r.URL.Query().Get("active"); activeStr != "" {
		active := activeStr == "true"
		filter.Active = &active
	}

	products, err := c.repository.Filter(r.Context(), filter)
	if err != nil {
		respondError(w, "FilterProducts", err)
		return
	}

	writeJSON(w, http.StatusOK, models.ProductListResponse{Products: products})
}

// Get handles GET /admin/products/:id
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/products/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetProduct", err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /admin/products/:id
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/products/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	product, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, "UpdateProduct", err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /admin/products/:id
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/products/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteProduct", err)
		return
	}

	service.DropProductCache(id)
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles POST /admin/products/:id/image
// Accepts the raw image bytes (PNG or JPEG) as the request body.
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UploadImage: Received %s request to %s", r.Method, r.URL.Path)

	id, err := subPathID(r, "/admin/products/", "/image")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := c.repository.GetByID(r.Context(), id); err != nil {
		respondError(w, "UploadImage", err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageUploadBytes+1))
	if err != nil {
		http.Error(w, "failed to read image data", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "image data is required", http.StatusBadRequest)
		return
	}
	if len(data) > maxImageUploadBytes {
		http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
		return
	}

	// Replacing the photo invalidates previous optimized copies
	service.DropProductCache(id)

	if err := service.SaveToCache(service.ProductImagePath(id), data); err != nil {
		respondError(w, "UploadImage", err)
		return
	}

	if err := c.repository.SetHasImage(r.Context(), id, true); err != nil {
		respondError(w, "UploadImage", err)
		return
	}

	log.Printf("✅ UploadImage: Stored photo for product id=%d (%d bytes)", id, len(data))
	w.WriteHeader(http.StatusNoContent)
}

// GetImage handles GET /admin/products/:id/image?size=thumb|medium
// Optimized copies are generated on first request and cached on disk.
func (c *ProductController) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := subPathID(r, "/admin/products/", "/image")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}
	if size != "thumb" && size != "medium" {
		http.Error(w, "size must be thumb or medium", http.StatusBadRequest)
		return
	}

	cachePath := service.ProductCachePath(id, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Cache-Control", "public, max-age=86400")
			w.Write(data)
			return
		}
		log.Printf("⚠️  GetImage: cache read failed for product id=%d: %v", id, err)
	}

	original, err := service.ReadFromCache(service.ProductImagePath(id))
	if err != nil {
		http.Error(w, "product image not found", http.StatusNotFound)
		return
	}

	optimized, err := service.OptimizeImage(original, size)
	if err != nil {
		respondError(w, "GetImage", err)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  GetImage: failed to cache optimized image: %v", err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(optimized)
}
