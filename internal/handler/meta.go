package handler

import (
	"net/http"

	"github.com/Tanvi150423/voguefit/internal/scraper"
	"github.com/Tanvi150423/voguefit/internal/trends"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the read-only metadata endpoints
type MetaHandler struct {
	store *trends.Store
}

// NewMetaHandler creates a new metadata handler
func NewMetaHandler(store *trends.Store) *MetaHandler {
	return &MetaHandler{store: store}
}

// Trends handles GET /api/v1/trends
func (h *MetaHandler) Trends(c *gin.Context) {
	active := h.store.AllActive()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(active),
		"trends":  active,
	})
}

// Platforms handles GET /api/v1/platforms
func (h *MetaHandler) Platforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"platforms": scraper.SupportedPlatforms(),
	})
}
