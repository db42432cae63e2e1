package controller

import (
	"net/http"

	"marbrerie-gestion/models"
)

// ConfigController serves the option lists the edit screens seed their
// dropdowns from
type ConfigController struct {
	options models.CatalogOptions
}

// NewConfigController creates a new ConfigController
func NewConfigController(options models.CatalogOptions) *ConfigController {
	return &ConfigController{
		options: options,
	}
}

// Get handles GET /admin/config
func (c *ConfigController) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.options)
}
