package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/trends"
)

type fakeFetcher struct {
	products      []model.Product
	lastPlatform  string
	lastPlatforms []string
	lastQuery     string
}

func (f *fakeFetcher) FetchPlatform(ctx context.Context, platform, query string) []model.Product {
	f.lastPlatform = platform
	f.lastQuery = query
	return f.products
}

func (f *fakeFetcher) FetchPlatforms(ctx context.Context, platforms []string, query string) []model.Product {
	f.lastPlatforms = platforms
	f.lastQuery = query
	return f.products
}

type fakeLogger struct {
	entries chan model.SearchLogEntry
}

func (f *fakeLogger) LogSearch(entry model.SearchLogEntry) {
	f.entries <- entry
}

func newTestDiscovery(t *testing.T, ai AIClient, fetcher ProductFetcher, logger SearchLogger) *DiscoveryService {
	t.Helper()
	store := trends.NewStore(nil)
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	return NewDiscoveryService(
		NewQueryInterpreter(ai),
		fetcher,
		NewTrendAnalyzer(ai, store),
		ai,
		logger,
	)
}

func TestDiscoverySearch_FullPipeline(t *testing.T) {
	fetcher := &fakeFetcher{products: []model.Product{
		{ID: "d1", Title: "Floral Wrap Dress", Brand: "Zara"},
		{ID: "d2", Title: "Beach Shorts", Brand: "Roadster"},
		{ID: "d3", Title: "Running Shoes", Brand: "Puma"},
		{ID: "d4", Title: "Crop Top Dress", Brand: "H&M"},
	}}
	svc := newTestDiscovery(t, &fakeAIClient{enabled: false}, fetcher, nil)

	products, intent := svc.DiscoverySearch(context.Background(), model.DiscoverySearchRequest{
		Query:    "dress for office party",
		Platform: "myntra",
	})

	if intent.Occasion != "office party" {
		t.Errorf("occasion = %q, want office party", intent.Occasion)
	}
	if fetcher.lastPlatform != "myntra" {
		t.Errorf("fetched platform = %q", fetcher.lastPlatform)
	}
	// the shoes and shorts fall to the category filter, the crop top to the
	// occasion's negative keywords
	if len(products) != 1 || products[0].ID != "d1" {
		t.Fatalf("products = %v, want only the wrap dress", ids(products))
	}
	if products[0].ConfidenceScore == 0 || products[0].Reasoning == "" {
		t.Error("surviving product left unscored")
	}
}

func TestDiscoverySearch_LogsAsync(t *testing.T) {
	logger := &fakeLogger{entries: make(chan model.SearchLogEntry, 1)}
	fetcher := &fakeFetcher{products: []model.Product{{ID: "1", Title: "Blue Jeans", Brand: "Levis"}}}
	svc := newTestDiscovery(t, &fakeAIClient{enabled: false}, fetcher, logger)

	svc.DiscoverySearch(context.Background(), model.DiscoverySearchRequest{
		UserID:   "user-7",
		Query:    "jeans",
		Platform: "myntra",
	})

	select {
	case entry := <-logger.entries:
		if entry.UserID != "user-7" || entry.Query != "jeans" || entry.Platform != "myntra" {
			t.Errorf("logged entry = %+v", entry)
		}
		if entry.ResultCount != 1 {
			t.Errorf("result count = %d, want 1", entry.ResultCount)
		}
	case <-time.After(time.Second):
		t.Fatal("search was never logged")
	}
}

func TestUniversalSearch_UsesIntentPlatforms(t *testing.T) {
	fetcher := &fakeFetcher{products: []model.Product{{ID: "1", Title: "Blue Jeans", Brand: "Levis"}}}
	svc := newTestDiscovery(t, &fakeAIClient{enabled: false}, fetcher, nil)

	products, intent := svc.UniversalSearch(context.Background(), model.UniversalSearchRequest{Query: "jeans"})

	if len(fetcher.lastPlatforms) != len(DefaultPlatforms) {
		t.Errorf("fanned out to %v, want the default platforms", fetcher.lastPlatforms)
	}
	if len(intent.Platforms) == 0 {
		t.Error("platforms must never be empty")
	}
	if len(products) != 1 {
		t.Errorf("got %d products", len(products))
	}
}

func TestFilterByPriceRange(t *testing.T) {
	min, max := 500.0, 2000.0
	products := []model.Product{
		{ID: "cheap", Price: "299"},
		{ID: "mid", Price: "1499"},
		{ID: "pricey", Price: "4999"},
		{ID: "unknown", Price: ""},
	}

	tests := []struct {
		name    string
		pr      *model.PriceRange
		wantIDs []string
	}{
		{"nil range keeps all", nil, []string{"cheap", "mid", "pricey", "unknown"}},
		{"min and max", &model.PriceRange{Min: &min, Max: &max}, []string{"mid", "unknown"}},
		{"max only", &model.PriceRange{Max: &max}, []string{"cheap", "mid", "unknown"}},
		{"min only", &model.PriceRange{Min: &min}, []string{"mid", "pricey", "unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPriceRange(products, tt.pr)
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("got %v, want %v", gotIDs, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestSuggestStyle(t *testing.T) {
	product := model.Product{Title: "Oversized Blazer", Brand: "Zara"}

	t.Run("without LLM", func(t *testing.T) {
		svc := newTestDiscovery(t, &fakeAIClient{enabled: false}, &fakeFetcher{}, nil)
		got := svc.SuggestStyle(context.Background(), model.SuggestRequest{Product: product})
		if got != fallbackSuggestion {
			t.Errorf("suggestion = %q, want the canned fallback", got)
		}
	})

	t.Run("LLM success", func(t *testing.T) {
		ai := &fakeAIClient{enabled: true, suggestResp: "Pair it with straight-leg trousers."}
		svc := newTestDiscovery(t, ai, &fakeFetcher{}, nil)
		got := svc.SuggestStyle(context.Background(), model.SuggestRequest{Product: product})
		if got != "Pair it with straight-leg trousers." {
			t.Errorf("suggestion = %q", got)
		}
	})

	t.Run("LLM failure falls back", func(t *testing.T) {
		ai := &fakeAIClient{enabled: true, suggestErr: errors.New("timeout")}
		svc := newTestDiscovery(t, ai, &fakeFetcher{}, nil)
		got := svc.SuggestStyle(context.Background(), model.SuggestRequest{Product: product})
		if got != fallbackSuggestion {
			t.Errorf("suggestion = %q, want the canned fallback", got)
		}
	})
}
