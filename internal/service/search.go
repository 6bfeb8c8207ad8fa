package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// fallbackSuggestion is returned when the LLM is unavailable
const fallbackSuggestion = "This versatile piece pairs well with neutral basics. Consider sneakers for casual looks or dress shoes for formal occasions."

// ProductFetcher fetches products for a platform, degrading internally.
// Satisfied by scraper.Fetcher.
type ProductFetcher interface {
	FetchPlatform(ctx context.Context, platform, query string) []model.Product
	FetchPlatforms(ctx context.Context, platforms []string, query string) []model.Product
}

// SearchLogger records completed searches. Implementations must not block
// the caller; a nil logger disables logging.
type SearchLogger interface {
	LogSearch(entry model.SearchLogEntry)
}

// DiscoveryService runs the full discovery pipeline: interpret the query,
// fetch products, apply hard and negative-keyword filters, then rank with
// the trend-augmented analyzer. Every stage degrades rather than fails.
type DiscoveryService struct {
	interpreter *QueryInterpreter
	fetcher     ProductFetcher
	analyzer    *TrendAnalyzer
	ai          AIClient
	logger      SearchLogger
}

// NewDiscoveryService wires the pipeline. logger may be nil.
func NewDiscoveryService(interpreter *QueryInterpreter, fetcher ProductFetcher, analyzer *TrendAnalyzer, ai AIClient, logger SearchLogger) *DiscoveryService {
	return &DiscoveryService{
		interpreter: interpreter,
		fetcher:     fetcher,
		analyzer:    analyzer,
		ai:          ai,
		logger:      logger,
	}
}

// DiscoverySearch handles a single-platform popup search.
func (s *DiscoveryService) DiscoverySearch(ctx context.Context, req model.DiscoverySearchRequest) ([]model.Product, model.SearchIntent) {
	start := time.Now()
	intent := s.interpreter.Interpret(ctx, req.Query)

	products := s.fetcher.FetchPlatform(ctx, req.Platform, req.Query)
	log.Printf("[Discovery] %q on %s: %d products fetched", req.Query, req.Platform, len(products))

	products = HardFilterByCategory(products, intent)
	products = FilterNegativeKeywords(products, intent.NegativeKeywords)
	products = s.analyzer.Analyze(ctx, products, req.Query, nil, req.Preferences)

	s.logAsync(model.SearchLogEntry{
		UserID:      req.UserID,
		Query:       req.Query,
		Platform:    req.Platform,
		ResultCount: len(products),
		TookMs:      time.Since(start).Milliseconds(),
	})
	return products, intent
}

// UniversalSearch fans one query out across every platform the interpreted
// intent selects, then filters and ranks the combined results.
func (s *DiscoveryService) UniversalSearch(ctx context.Context, req model.UniversalSearchRequest) ([]model.Product, model.SearchIntent) {
	start := time.Now()
	intent := s.interpreter.Interpret(ctx, req.Query)

	products := s.fetcher.FetchPlatforms(ctx, intent.Platforms, req.Query)
	log.Printf("[Discovery] %q across %d platforms: %d products fetched", req.Query, len(intent.Platforms), len(products))

	products = HardFilterByCategory(products, intent)
	products = FilterNegativeKeywords(products, intent.NegativeKeywords)
	products = FilterByPriceRange(products, intent.PriceRange)
	products = s.analyzer.Analyze(ctx, products, req.Query, nil, req.Preferences)

	s.logAsync(model.SearchLogEntry{
		UserID:      req.UserID,
		Query:       req.Query,
		Platform:    "all",
		ResultCount: len(products),
		TookMs:      time.Since(start).Milliseconds(),
	})
	return products, intent
}

// AnalyzeProducts re-scores caller-supplied products against a query.
func (s *DiscoveryService) AnalyzeProducts(ctx context.Context, req model.AnalyzeRequest) []model.Product {
	return s.analyzer.Analyze(ctx, req.Products, req.Query, nil, req.Preferences)
}

// SuggestStyle returns styling advice for one product, canned when the LLM
// is unavailable.
func (s *DiscoveryService) SuggestStyle(ctx context.Context, req model.SuggestRequest) string {
	if s.ai == nil || !s.ai.IsEnabled() {
		return fallbackSuggestion
	}
	suggestion, err := s.ai.SuggestStyle(ctx, req.Product, req.Preferences)
	if err != nil || suggestion == "" {
		log.Printf("[Discovery] Style suggestion failed, using fallback: %v", err)
		return fallbackSuggestion
	}
	return suggestion
}

func (s *DiscoveryService) logAsync(entry model.SearchLogEntry) {
	if s.logger == nil {
		return
	}
	go s.logger.LogSearch(entry)
}

// FilterByPriceRange keeps products whose numeric price falls inside the
// range. Products with unparseable prices are kept; pricing data from
// scrapes is too noisy to drop items over.
func FilterByPriceRange(products []model.Product, pr *model.PriceRange) []model.Product {
	if pr == nil || (pr.Min == nil && pr.Max == nil) {
		return products
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		price, err := strconv.ParseFloat(digitString(p.Price), 64)
		if err != nil || price == 0 {
			out = append(out, p)
			continue
		}
		if pr.Min != nil && price < *pr.Min {
			continue
		}
		if pr.Max != nil && price > *pr.Max {
			continue
		}
		out = append(out, p)
	}
	log.Printf("[Discovery] Price filter: %d -> %d products", len(products), len(out))
	return out
}

func digitString(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
