package handler

import (
	"net/http"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/service"

	"github.com/gin-gonic/gin"
)

// DiscoveryHandler handles product discovery HTTP requests
type DiscoveryHandler struct {
	discovery *service.DiscoveryService
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discovery *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discovery: discovery}
}

// Search handles POST /api/v1/discovery/search
func (h *DiscoveryHandler) Search(c *gin.Context) {
	var req model.DiscoverySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.SearchResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	start := time.Now()
	products, intent := h.discovery.DiscoverySearch(c.Request.Context(), req)
	c.JSON(http.StatusOK, searchResponse(products, intent, start))
}

// UniversalSearch handles POST /api/v1/search
func (h *DiscoveryHandler) UniversalSearch(c *gin.Context) {
	var req model.UniversalSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.SearchResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	start := time.Now()
	products, intent := h.discovery.UniversalSearch(c.Request.Context(), req)
	c.JSON(http.StatusOK, searchResponse(products, intent, start))
}

// Analyze handles POST /api/v1/analyze
func (h *DiscoveryHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.SearchResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	start := time.Now()
	products := h.discovery.AnalyzeProducts(c.Request.Context(), req)
	resp := model.SearchResponse{
		Success:  true,
		Products: products,
		Took:     time.Since(start).Milliseconds(),
	}
	c.JSON(http.StatusOK, resp)
}

// Suggest handles POST /api/v1/suggest
func (h *DiscoveryHandler) Suggest(c *gin.Context) {
	var req model.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.SuggestResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	suggestion := h.discovery.SuggestStyle(c.Request.Context(), req)
	c.JSON(http.StatusOK, model.SuggestResponse{
		Success:    true,
		Suggestion: suggestion,
	})
}

func searchResponse(products []model.Product, intent model.SearchIntent, start time.Time) model.SearchResponse {
	resp := model.SearchResponse{
		Success:  true,
		Products: products,
		Intent:   &intent,
		Took:     time.Since(start).Milliseconds(),
	}
	if len(resp.Products) == 0 {
		resp.Products = []model.Product{}
		resp.Message = "No products matched your search. Try a broader query."
	}
	return resp
}
