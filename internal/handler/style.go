package handler

import (
	"net/http"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/service"

	"github.com/gin-gonic/gin"
)

// StyleHandler serves body-type style recommendations
type StyleHandler struct {
	recommender *service.StyleRecommender
}

// NewStyleHandler creates a new style handler
func NewStyleHandler(recommender *service.StyleRecommender) *StyleHandler {
	return &StyleHandler{recommender: recommender}
}

// BodyRecommend handles POST /api/v1/body-recommend
func (h *StyleHandler) BodyRecommend(c *gin.Context) {
	var req model.BodyRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.BodyRecommendResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	rec, err := h.recommender.Recommend(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.BodyRecommendResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	products := rec.Products
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, model.BodyRecommendResponse{
		Success:   true,
		BodyType:  req.BodyType,
		Products:  products,
		Reasoning: rec.Reasoning,
		StyleGuide: &model.StyleGuide{
			Flattering: rec.StyleGuide.Flattering,
			Avoid:      rec.StyleGuide.Avoid,
		},
		MatchedTrends: rec.MatchedTrends,
	})
}
