package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// fakeAIClient scripts the LLM responses for pipeline tests
type fakeAIClient struct {
	enabled      bool
	intentResp   *AIIntentResponse
	intentErr    error
	analyzeResp  []AIProductScore
	analyzeErr   error
	suggestResp  string
	suggestErr   error
	analyzeCalls int
	lastContext  string
	lastProducts []model.Product
}

func (f *fakeAIClient) InterpretQuery(ctx context.Context, query string) (*AIIntentResponse, error) {
	return f.intentResp, f.intentErr
}

func (f *fakeAIClient) AnalyzeProducts(ctx context.Context, query, trendContext string, products []model.Product) ([]AIProductScore, error) {
	f.analyzeCalls++
	f.lastContext = trendContext
	f.lastProducts = products
	return f.analyzeResp, f.analyzeErr
}

func (f *fakeAIClient) SuggestStyle(ctx context.Context, product model.Product, preferences map[string]any) (string, error) {
	return f.suggestResp, f.suggestErr
}

func (f *fakeAIClient) IsEnabled() bool { return f.enabled }

func TestInterpret_RuleBasedOccasions(t *testing.T) {
	qi := NewQueryInterpreter(nil)

	tests := []struct {
		name         string
		query        string
		wantOccasion string
		wantStyle    string
	}{
		{"office party is composite", "dress for office party", "office party", "smart casual"},
		{"office alone", "formal shirt for office", "office", "formal"},
		{"party alone", "club night outfit for party", "party", "party"},
		{"beach", "beach vacation dress", "beach", "resort"},
		{"wedding", "wedding sangeet lehenga", "wedding", "ethnic"},
		{"casual", "everyday casual tshirt", "casual", "casual"},
		{"no occasion", "blue jeans", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := qi.Interpret(context.Background(), tt.query)
			if intent.Occasion != tt.wantOccasion {
				t.Errorf("occasion = %q, want %q", intent.Occasion, tt.wantOccasion)
			}
			if intent.Style != tt.wantStyle {
				t.Errorf("style = %q, want %q", intent.Style, tt.wantStyle)
			}
			if len(intent.Platforms) == 0 {
				t.Error("platforms must never be empty")
			}
		})
	}
}

func TestInterpret_OfficePartyNegatives(t *testing.T) {
	qi := NewQueryInterpreter(nil)
	intent := qi.Interpret(context.Background(), "what to wear to an office party")

	if intent.Occasion != "office party" {
		t.Fatalf("occasion = %q, want office party", intent.Occasion)
	}

	// the composite occasion blocks both beachwear and overly casual cuts
	wantBlocked := []string{"beach", "shorts", "crop top", "torn"}
	for _, kw := range wantBlocked {
		found := false
		for _, neg := range intent.NegativeKeywords {
			if neg == kw {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("negative keywords missing %q", kw)
		}
	}
}

func TestInterpret_CategoryPatterns(t *testing.T) {
	qi := NewQueryInterpreter(nil)

	tests := []struct {
		query        string
		wantCategory string
		wantType     model.ProductType
	}{
		{"cotton kurta for men", "shirt", model.ProductTypeTopwear},
		{"black graphic tee", "tshirt", model.ProductTypeTopwear},
		{"floral maxi dress", "dress", model.ProductTypeDresses},
		{"slim fit jeans", "jeans", model.ProductTypeBottomwear},
		{"running sneakers", "shoes", model.ProductTypeFootwear},
		{"leather handbag", "bag", model.ProductTypeAccessories},
		{"silk saree", "saree", model.ProductTypeEthnic},
		{"lehenga for sister", "lehenga", model.ProductTypeEthnic},
		{"something nice", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent := qi.Interpret(context.Background(), tt.query)
			if intent.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", intent.Category, tt.wantCategory)
			}
			if intent.ProductType != tt.wantType {
				t.Errorf("productType = %q, want %q", intent.ProductType, tt.wantType)
			}
		})
	}
}

func TestInterpret_FirstPatternWins(t *testing.T) {
	qi := NewQueryInterpreter(nil)

	// "kurta" sits in the shirt pattern, above the ethnic patterns
	intent := qi.Interpret(context.Background(), "kurta with palazzo")
	if intent.Category != "shirt" || intent.ProductType != model.ProductTypeTopwear {
		t.Errorf("got category=%q type=%q, want the earlier shirt/topwear match",
			intent.Category, intent.ProductType)
	}
}

func TestInterpret_AIPath(t *testing.T) {
	min, max := 500.0, 2000.0
	ai := &fakeAIClient{
		enabled: true,
		intentResp: &AIIntentResponse{
			Category:         "dress",
			ProductType:      "dresses",
			PriceMin:         &min,
			PriceMax:         &max,
			Style:            "party",
			Occasion:         "party",
			NegativeKeywords: []string{"formal"},
		},
	}
	qi := NewQueryInterpreter(ai)

	intent := qi.Interpret(context.Background(), "party dress under 2000")
	if intent.Query != "dress" {
		t.Errorf("query = %q, want the AI category", intent.Query)
	}
	if intent.ProductType != model.ProductTypeDresses {
		t.Errorf("productType = %q, want dresses", intent.ProductType)
	}
	if intent.PriceRange == nil || *intent.PriceRange.Max != 2000 {
		t.Error("price range not carried over")
	}
	if len(intent.Platforms) == 0 {
		t.Error("platforms must never be empty")
	}
}

func TestInterpret_AIFailureFallsBackToRules(t *testing.T) {
	ai := &fakeAIClient{enabled: true, intentErr: errors.New("rate limited")}
	qi := NewQueryInterpreter(ai)

	intent := qi.Interpret(context.Background(), "formal shirt for office")
	// full fallback: the rule parser owns the whole intent
	if intent.Occasion != "office" {
		t.Errorf("occasion = %q, want the rule-parsed office", intent.Occasion)
	}
	if intent.Category != "shirt" {
		t.Errorf("category = %q, want shirt", intent.Category)
	}
}
