package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tanvi150423/voguefit/internal/config"
)

// Client talks to a ScrapingBee-style rendering proxy. Every request renders
// JavaScript, waits for the page to settle, and asks for a JSON envelope that
// carries the extract-rules output, captured XHR bodies, and the raw HTML.
type Client struct {
	config     *config.ScraperConfig
	httpClient *http.Client
}

// NewClient creates a scraping client, or nil when no API key is configured.
// A nil client tells the fetcher to serve static catalogs only.
func NewClient(cfg *config.ScraperConfig) *Client {
	if !cfg.Enabled {
		return nil
	}
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// xhrEntry is one captured background request from the rendered page
type xhrEntry struct {
	URL  string          `json:"url"`
	Body json.RawMessage `json:"body"`
}

// scrapeResponse is the json_response envelope from the scraping API.
// Products is populated when the platform's extract rules matched; XHR and
// Body feed the later extraction stages.
type scrapeResponse struct {
	Products []extractedProduct `json:"products"`
	XHR      []xhrEntry         `json:"xhr"`
	Body     string             `json:"body"`
}

// extractedProduct mirrors the loose shape extract rules produce. Sites
// disagree on field names, so both spellings of each are accepted.
type extractedProduct struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Brand      string `json:"brand"`
	Price      string `json:"price"`
	Image      string `json:"image"`
	ImageURL   string `json:"image_url"`
	URL        string `json:"url"`
	ProductURL string `json:"product_url"`
}

// Scrape renders the platform's search page for query and returns the
// response envelope. body may be plain HTML when the API ignores the JSON
// envelope request; that case is folded into scrapeResponse.Body.
func (c *Client) Scrape(ctx context.Context, platform PlatformConfig, query string) (*scrapeResponse, error) {
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("url", platform.SearchURL(query))
	params.Set("render_js", "true")
	params.Set("wait", strconv.Itoa(c.config.RenderWaitMs))
	params.Set("premium_proxy", "true")
	params.Set("country_code", c.config.CountryCode)
	params.Set("json_response", "true")

	if platform.ExtractRules != nil {
		rules, err := json.Marshal(platform.ExtractRules)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal extract rules: %w", err)
		}
		params.Set("extract_rules", string(rules))
	}

	reqURL := c.config.APIBase + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

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
		return nil, fmt.Errorf("scraping API returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var envelope scrapeResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Not the JSON envelope: treat the payload as raw page HTML
		return &scrapeResponse{Body: string(body)}, nil
	}
	return &envelope, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
