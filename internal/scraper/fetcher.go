package scraper

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// Fetcher retrieves product listings per platform: live scrape when
// configured, static catalog otherwise. It never returns an error; any
// failure degrades to the catalog filtered by relevance so the pipeline
// always has products to rank.
type Fetcher struct {
	client *Client // nil when scraping is not configured
	cache  *ProductCache

	// relevanceFilter trims catalog fallbacks to the query; injected to keep
	// this package free of the scoring logic
	relevanceFilter func(products []model.Product, query string) []model.Product
}

// NewFetcher creates a product fetcher. client may be nil.
func NewFetcher(client *Client, cache *ProductCache, relevanceFilter func([]model.Product, string) []model.Product) *Fetcher {
	if relevanceFilter == nil {
		relevanceFilter = func(products []model.Product, _ string) []model.Product { return products }
	}
	return &Fetcher{client: client, cache: cache, relevanceFilter: relevanceFilter}
}

// FetchPlatform returns products for one platform+query. Cache is consulted
// first; successful live extractions are cached, catalog fallbacks are not
// (a later fetch should retry scraping, not pin the fallback).
func (f *Fetcher) FetchPlatform(ctx context.Context, platform, query string) []model.Product {
	platform = strings.ToLower(platform)
	cacheKey := CacheKey(platform, query)

	if cached, ok := f.cache.Get(cacheKey); ok {
		log.Printf("[Scraper] Cache hit for %s", cacheKey)
		return cached
	}

	cfg, known := PlatformFor(platform)
	if f.client == nil || !known || !cfg.Scrapeable() {
		log.Printf("[Scraper] Using fallback data for %s (no API key or unsupported platform)", platform)
		return f.relevanceFilter(FallbackCatalog(platform), query)
	}

	log.Printf("[Scraper] Extracting from %s for: %s", platform, query)
	resp, err := f.client.Scrape(ctx, cfg, query)
	if err != nil {
		log.Printf("[Scraper] Error scraping %s: %v", platform, err)
		return f.relevanceFilter(FallbackCatalog(platform), query)
	}

	products := f.extract(resp, platform)
	if len(products) == 0 {
		log.Printf("[Scraper] No products found, using fallback for %s", platform)
		return f.relevanceFilter(FallbackCatalog(platform), query)
	}

	f.cache.Set(cacheKey, products)
	log.Printf("[Scraper] Cached %d products from %s", len(products), platform)
	return products
}

// extract runs the three-stage extraction waterfall over a scrape response:
// extract-rules output, then captured XHR bodies, then raw page HTML.
func (f *Fetcher) extract(resp *scrapeResponse, platform string) []model.Product {
	if products := productsFromExtractRules(resp.Products, platform); len(products) > 0 {
		log.Printf("[Scraper] Found %d extracted products", len(products))
		return products
	}
	if products := productsFromXHR(resp.XHR, platform); len(products) > 0 {
		log.Printf("[Scraper] Found %d products in XHR responses", len(products))
		return products
	}
	if products := productsFromHTML(resp.Body, platform); len(products) > 0 {
		log.Printf("[Scraper] HTML parser found %d products", len(products))
		return products
	}
	return nil
}

// FetchPlatforms fans out across platforms concurrently and concatenates the
// results. Per-platform failures already degrade inside FetchPlatform, so
// the group never carries an error.
func (f *Fetcher) FetchPlatforms(ctx context.Context, platforms []string, query string) []model.Product {
	results := make([][]model.Product, len(platforms))

	g, gctx := errgroup.WithContext(ctx)
	for i, platform := range platforms {
		i, platform := i, platform
		g.Go(func() error {
			results[i] = f.FetchPlatform(gctx, platform, query)
			return nil
		})
	}
	_ = g.Wait()

	var all []model.Product
	for _, products := range results {
		all = append(all, products...)
	}
	return all
}

// ClearCache drops all cached product lists
func (f *Fetcher) ClearCache() {
	f.cache.Clear()
}
