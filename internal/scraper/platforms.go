package scraper

import (
	"net/url"
	"sort"
	"strings"
)

// PlatformConfig describes one e-commerce platform: how to build a search
// URL and, for platforms on the free scraping tier, the CSS extract rules
// sent to the scraping API. Platforms without extract rules are served from
// the static catalog only.
type PlatformConfig struct {
	Name         string
	BaseURL      string
	SearchURL    func(query string) string
	ExtractRules map[string]any
}

// Scrapeable reports whether live scraping is configured for the platform
func (pc PlatformConfig) Scrapeable() bool {
	return pc.ExtractRules != nil
}

func listRule(selector string, output map[string]any) map[string]any {
	return map[string]any{
		"products": map[string]any{
			"selector": selector,
			"type":     "list",
			"output":   output,
		},
	}
}

func attrRule(selector, attr string) map[string]any {
	return map[string]any{"selector": selector, "output": attr}
}

var platformConfigs = map[string]PlatformConfig{
	"myntra": {
		Name:    "myntra",
		BaseURL: "https://www.myntra.com",
		SearchURL: func(query string) string {
			return "https://www.myntra.com/" + url.PathEscape(query)
		},
		ExtractRules: listRule(".product-base", map[string]any{
			"name":  ".product-product",
			"brand": ".product-brand",
			"price": ".product-discountedPrice, .product-price",
			"image": attrRule("img", "@src"),
			"url":   attrRule("a", "@href"),
		}),
	},
	"zara": {
		Name:    "zara",
		BaseURL: "https://www.zara.com",
		SearchURL: func(query string) string {
			return "https://www.zara.com/in/en/search?searchTerm=" + url.QueryEscape(query)
		},
		ExtractRules: listRule("[data-qa-action='product-link']", map[string]any{
			"name":  ".product-link-title",
			"price": ".money-amount__main",
			"url":   attrRule("a", "@href"),
		}),
	},
	"hm": {
		Name:    "hm",
		BaseURL: "https://www2.hm.com",
		SearchURL: func(query string) string {
			return "https://www2.hm.com/en_in/search-results.html?q=" + url.QueryEscape(query)
		},
		ExtractRules: listRule(".product-item", map[string]any{
			"name":  ".item-heading a, .link",
			"price": ".item-price span, .price-value",
			"image": attrRule("img", "@src"),
			"url":   attrRule("a", "@href"),
		}),
	},
	"uniqlo": {
		Name:    "uniqlo",
		BaseURL: "https://www.uniqlo.com",
		SearchURL: func(query string) string {
			return "https://www.uniqlo.com/in/en/search?q=" + url.QueryEscape(query)
		},
		ExtractRules: listRule(".fr-ec-product-tile, [data-test='product-tile']", map[string]any{
			"name":  ".fr-ec-product-tile__name, [data-test='product-tile-name']",
			"price": ".fr-ec-price-text, [data-test='product-tile-price']",
			"image": attrRule("img", "@src"),
			"url":   attrRule("a", "@href"),
		}),
	},
	"amazon": {
		Name:    "amazon",
		BaseURL: "https://www.amazon.in",
		SearchURL: func(query string) string {
			return "https://www.amazon.in/s?k=" + url.QueryEscape(query)
		},
	},
	"flipkart": {
		Name:    "flipkart",
		BaseURL: "https://www.flipkart.com",
		SearchURL: func(query string) string {
			return "https://www.flipkart.com/search?q=" + url.QueryEscape(query)
		},
	},
	"jio": {
		Name:    "jio",
		BaseURL: "https://www.jiomart.com",
		SearchURL: func(query string) string {
			return "https://www.jiomart.com/search/" + url.PathEscape(query)
		},
	},
}

// PlatformFor looks up a platform config by (case-insensitive) name
func PlatformFor(name string) (PlatformConfig, bool) {
	cfg, ok := platformConfigs[strings.ToLower(name)]
	return cfg, ok
}

// SupportedPlatforms lists every known platform name, sorted
func SupportedPlatforms() []string {
	names := make([]string, 0, len(platformConfigs))
	for name := range platformConfigs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var displayNames = map[string]string{
	"hm":  "H&M",
	"jio": "JioMart",
}

// displayName renders a platform name for use as a brand placeholder
func displayName(platform string) string {
	if platform == "" {
		return ""
	}
	if name, ok := displayNames[platform]; ok {
		return name
	}
	return strings.ToUpper(platform[:1]) + platform[1:]
}
