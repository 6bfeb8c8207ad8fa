package service

import (
	"context"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// AIClient is the interface for LLM service providers
type AIClient interface {
	// InterpretQuery parses a shopping query into structured intent
	InterpretQuery(ctx context.Context, query string) (*AIIntentResponse, error)

	// AnalyzeProducts scores products for a query, grounded in the supplied
	// trend context. At most a small batch of products is sent per call.
	AnalyzeProducts(ctx context.Context, query, trendContext string, products []model.Product) ([]AIProductScore, error)

	// SuggestStyle returns short styling advice for a single product
	SuggestStyle(ctx context.Context, product model.Product, preferences map[string]any) (string, error)

	// IsEnabled returns whether the AI client is configured and ready
	IsEnabled() bool
}

// AIIntentResponse represents the parsed shopping intent from AI
type AIIntentResponse struct {
	Category         string   `json:"category,omitempty"`
	ProductType      string   `json:"product_type,omitempty"`
	PriceMin         *float64 `json:"price_min,omitempty"`
	PriceMax         *float64 `json:"price_max,omitempty"`
	Style            string   `json:"style,omitempty"`
	Occasion         string   `json:"occasion,omitempty"`
	NegativeKeywords []string `json:"negative_keywords,omitempty"`
}

// AIProductScore represents one scored product from the analyzer model
type AIProductScore struct {
	ID              string  `json:"id"`
	ComfortScore    int     `json:"comfort_score"`
	ConfidenceScore int     `json:"confidence_score"`
	Reasoning       string  `json:"reasoning"`
	TrendReference  *string `json:"trend_reference,omitempty"`
}

// Ensure GroqClient implements AIClient
var _ AIClient = (*GroqClient)(nil)
