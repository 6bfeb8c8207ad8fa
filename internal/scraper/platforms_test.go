package scraper

import (
	"strings"
	"testing"
)

func TestPlatformFor(t *testing.T) {
	cfg, ok := PlatformFor("Myntra")
	if !ok || cfg.Name != "myntra" {
		t.Fatalf("PlatformFor(Myntra) = %+v, %v", cfg, ok)
	}
	if !cfg.Scrapeable() {
		t.Error("myntra should be scrapeable")
	}

	if _, ok := PlatformFor("ebay"); ok {
		t.Error("unexpected config for unknown platform")
	}
}

func TestScrapeablePlatforms(t *testing.T) {
	scrapeable := map[string]bool{"myntra": true, "zara": true, "hm": true, "uniqlo": true}
	for name, cfg := range platformConfigs {
		if cfg.Scrapeable() != scrapeable[name] {
			t.Errorf("%s scrapeable = %v, want %v", name, cfg.Scrapeable(), scrapeable[name])
		}
	}
}

func TestSearchURLEncodesQuery(t *testing.T) {
	for name, cfg := range platformConfigs {
		u := cfg.SearchURL("white shirt")
		if strings.Contains(u, " ") {
			t.Errorf("%s search URL not encoded: %s", name, u)
		}
		if !strings.HasPrefix(u, "https://") {
			t.Errorf("%s search URL = %s", name, u)
		}
	}
}

func TestSupportedPlatforms(t *testing.T) {
	names := SupportedPlatforms()
	if len(names) != len(platformConfigs) {
		t.Fatalf("got %d platforms, want %d", len(names), len(platformConfigs))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("platforms not sorted: %v", names)
		}
	}
}

func TestFallbackCatalog(t *testing.T) {
	for _, name := range SupportedPlatforms() {
		catalog := FallbackCatalog(name)
		if len(catalog) == 0 {
			t.Errorf("platform %s has no fallback catalog", name)
			continue
		}
		seen := make(map[string]bool)
		for _, p := range catalog {
			if p.Platform != name {
				t.Errorf("%s catalog item %s has platform %q", name, p.ID, p.Platform)
			}
			if p.Title == "" || p.Price == "" {
				t.Errorf("%s catalog item %s incomplete", name, p.ID)
			}
			if seen[p.ID] {
				t.Errorf("%s catalog has duplicate id %s", name, p.ID)
			}
			seen[p.ID] = true
		}
	}
}
