package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/kodakam/pkg/api/types"
	"github.com/urmzd/kodakam/pkg/catalog"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	catalog *catalog.Catalog
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cat *catalog.Catalog) *HealthHandler {
	return &HealthHandler{catalog: cat}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Reports service status and the size of the loaded command catalog
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:      "healthy",
		Commands:    h.catalog.Len(),
		SweepTokens: len(catalog.SweepTokens()),
		Timestamp:   time.Now(),
	})
}
