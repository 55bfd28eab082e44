// README: Catalog handlers — enumerate transport modes and languages for the form.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routefinder/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) Modes(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"modes": h.catalog.Profiles()})
}

func (h *CatalogHandler) Languages(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"languages": h.catalog.Languages()})
}

// Emergency serves the static emergency-contacts block shown next to the form.
// Informational text only; dialing is the client's business.
func Emergency(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{
		"number": "112",
		"note":   "Call emergency services at 112 in India.",
	})
}
