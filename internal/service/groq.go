package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Tanvi150423/voguefit/internal/config"
	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/utils"
)

// GroqClient handles OpenAI-compatible chat completion API interactions
type GroqClient struct {
	config     *config.GroqConfig
	httpClient *http.Client
}

// NewGroqClient creates a new OpenAI-compatible client
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	if cfg.Enabled {
		log.Printf("🔧 AI client configured (base: %s, model: %s)", cfg.APIBase, cfg.IntentModel)
	} else {
		log.Printf("⚠️  AI client disabled (no API key), rule-based fallbacks will be used")
	}

	return &GroqClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *GroqClient) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion performs a chat completion request
func (c *GroqClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("AI API is not enabled (missing API key)")
	}

	if req.Model == "" {
		req.Model = c.config.IntentModel
	}
	if req.Temperature == 0 && c.config.Temperature > 0 {
		req.Temperature = c.config.Temperature
	}
	if req.MaxTokens == 0 && c.config.MaxTokens > 0 {
		req.MaxTokens = c.config.MaxTokens
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// completionContent runs a chat completion and returns the first choice content
func (c *GroqClient) completionContent(ctx context.Context, req ChatCompletionRequest) (string, error) {
	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from AI API")
	}
	return resp.Choices[0].Message.Content, nil
}

// InterpretQuery uses the LLM to parse a natural language shopping query
// into structured intent
func (c *GroqClient) InterpretQuery(ctx context.Context, query string) (*AIIntentResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("AI API is not enabled")
	}

	systemPrompt := `You are a fashion shopping assistant for Indian e-commerce. Parse the user's natural language query into structured search intent.

Extract the following information if present:
- category: short search phrase describing what to look for (string, e.g. "floral summer dress")
- product_type: must be one of: "topwear", "bottomwear", "dresses", "footwear", "accessories", "ethnic" (string)
- price_min: minimum price in INR (number)
- price_max: maximum price in INR (number)
- style: style descriptor, e.g. "casual", "formal", "bohemian" (string)
- occasion: occasion if mentioned, e.g. "office", "party", "wedding", "office party" (string)
- negative_keywords: array of words that matching products must NOT contain

Important rules:
- Respond ONLY with valid JSON
- If a field is not mentioned, omit it
- For prices: "2k" = 2000, "under 1500" = price_max 1500, "1000-3000" = price_min 1000 and price_max 3000
- "office party" is its own occasion, distinct from "office" and "party"
- Shoes, sneakers, heels, sandals are "footwear"; sarees, kurtas, lehengas are "ethnic"
- Add generic words the user excludes ("no crop tops", "not bodycon") to negative_keywords

Examples:
Query: "floral dress for office party under 2000"
Response: {"category": "floral dress", "product_type": "dresses", "price_max": 2000, "occasion": "office party", "style": "floral"}

Query: "comfortable white sneakers for daily wear"
Response: {"category": "white sneakers", "product_type": "footwear", "style": "casual", "occasion": "casual"}

Query: "elegant saree for wedding, no heavy embroidery"
Response: {"category": "elegant saree", "product_type": "ethnic", "occasion": "wedding", "style": "elegant", "negative_keywords": ["heavy embroidery"]}`

	req := ChatCompletionRequest{
		Model: c.config.IntentModel,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		Temperature:    0.3,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	content, err := c.completionContent(ctx, req)
	if err != nil {
		return nil, err
	}

	// Use robust JSON parser to handle various AI output formats
	var result AIIntentResponse
	if err := utils.ParseAIJSON(content, &result); err != nil {
		log.Printf("Failed to parse AI intent response, content: %s", content)
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	if err := validateIntentResponse(&result); err != nil {
		return nil, fmt.Errorf("AI response validation failed: %w", err)
	}

	return &result, nil
}

// validateIntentResponse validates the AI response using business rules
func validateIntentResponse(resp *AIIntentResponse) error {
	if resp.PriceMin != nil && resp.PriceMax != nil {
		if *resp.PriceMin > *resp.PriceMax {
			return fmt.Errorf("price_min (%f) cannot be greater than price_max (%f)", *resp.PriceMin, *resp.PriceMax)
		}
	}
	if resp.PriceMin != nil && *resp.PriceMin < 0 {
		return fmt.Errorf("price_min cannot be negative")
	}
	if resp.PriceMax != nil && *resp.PriceMax < 0 {
		return fmt.Errorf("price_max cannot be negative")
	}

	if resp.ProductType != "" && !model.ValidProductType(resp.ProductType) {
		return fmt.Errorf("invalid product_type: %s", resp.ProductType)
	}

	return nil
}

// AnalyzeProducts sends a product batch to the analyzer model and returns
// per-product scores. The trend context is included verbatim so reasoning
// can cite specific trends.
func (c *GroqClient) AnalyzeProducts(ctx context.Context, query, trendContext string, products []model.Product) ([]AIProductScore, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("AI API is not enabled")
	}
	if len(products) == 0 {
		return []AIProductScore{}, nil
	}

	type productLine struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Price string `json:"price"`
		Brand string `json:"brand,omitempty"`
	}
	lines := make([]productLine, 0, len(products))
	for _, p := range products {
		lines = append(lines, productLine{ID: p.ID, Title: p.Title, Price: p.Price, Brand: p.Brand})
	}
	productsJSON, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal products: %w", err)
	}

	systemPrompt := `You are a fashion stylist scoring products for a shopper's query.

For EVERY product in the input array, return an object with:
- id: the product id, unchanged
- comfort_score: 0-100, how comfortable this product likely is
- confidence_score: 0-100, how well this product matches the query
- reasoning: one short sentence explaining the score
- trend_reference: name of a current trend from the trend context that supports this product, or omit if none applies

Rules:
- Respond ONLY with a valid JSON array, one object per input product
- Never invent product ids
- Ground trend_reference strictly in the provided trend context; never invent trends`

	userPrompt := fmt.Sprintf("Query: %s\n\nCurrent trend context:\n%s\n\nProducts:\n%s", query, trendContext, string(productsJSON))

	req := ChatCompletionRequest{
		Model: c.config.AnalyzerModel,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.4,
	}

	content, err := c.completionContent(ctx, req)
	if err != nil {
		return nil, err
	}

	var scores []AIProductScore
	if err := utils.ParseAIJSON(content, &scores); err != nil {
		log.Printf("Failed to parse analyzer response, content: %s", content)
		return nil, fmt.Errorf("failed to parse analyzer response: %w", err)
	}

	return scores, nil
}

// SuggestStyle asks the LLM for brief styling advice on one product
func (c *GroqClient) SuggestStyle(ctx context.Context, product model.Product, preferences map[string]any) (string, error) {
	if !c.config.Enabled {
		return "", fmt.Errorf("AI API is not enabled")
	}

	systemPrompt := "You are a fashion stylist. Give brief, practical styling advice (2-3 sentences max)."
	if len(preferences) > 0 {
		if prefsJSON, err := json.Marshal(preferences); err == nil {
			systemPrompt += fmt.Sprintf("\nUser preferences: %s", string(prefsJSON))
		}
	}

	req := ChatCompletionRequest{
		Model: c.config.IntentModel,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("How should I style this: %s by %s (₹%s)?", product.Title, product.Brand, product.Price)},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	}

	content, err := c.completionContent(ctx, req)
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty suggestion from AI API")
	}
	return content, nil
}
