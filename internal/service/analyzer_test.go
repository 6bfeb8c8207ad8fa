package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/trends"
)

func newTestAnalyzer(t *testing.T, ai AIClient) *TrendAnalyzer {
	t.Helper()
	store := trends.NewStore(nil)
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	return NewTrendAnalyzer(ai, store)
}

func strPtr(s string) *string { return &s }

func TestAnalyze_KeywordFallbackWithoutAI(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeAIClient{enabled: false})

	products := []model.Product{
		{ID: "1", Title: "Wool Scarf", Brand: "Uniqlo"},
		{ID: "2", Title: "White Cotton Shirt", Brand: "Roadster"},
	}
	got := analyzer.Analyze(context.Background(), products, "white cotton shirt", nil, nil)

	if len(got) != 2 {
		t.Fatalf("got %d products, want all 2 scored", len(got))
	}
	// sorted by confidence descending: the shirt outranks the scarf
	if got[0].ID != "2" {
		t.Errorf("top product = %s, want the shirt", got[0].ID)
	}
	for _, p := range got {
		if p.ConfidenceScore == 0 {
			t.Errorf("product %s left unscored", p.ID)
		}
		if p.Reasoning == "" {
			t.Errorf("product %s has no reasoning", p.ID)
		}
		if p.TrendReference != nil {
			t.Errorf("product %s has a trend reference without any LLM", p.ID)
		}
	}
}

func TestAnalyze_EmptyProducts(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeAIClient{enabled: true})
	got := analyzer.Analyze(context.Background(), nil, "shirt", nil, nil)
	if len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
}

func TestAnalyze_MergesLLMScores(t *testing.T) {
	ai := &fakeAIClient{
		enabled: true,
		analyzeResp: []AIProductScore{
			{ID: "1", ComfortScore: 80, ConfidenceScore: 90, Reasoning: "Strong match for the query."},
			{ID: "2", ComfortScore: 60, ConfidenceScore: 40, Reasoning: "Loose match."},
		},
	}
	analyzer := newTestAnalyzer(t, ai)

	products := []model.Product{
		{ID: "1", Title: "Oversized Blazer", Brand: "Zara"},
		{ID: "2", Title: "Wool Scarf", Brand: "Uniqlo"},
	}
	got := analyzer.Analyze(context.Background(), products, "blazer", nil, nil)

	if got[0].ID != "1" || got[0].ConfidenceScore != 90 {
		t.Errorf("top product = %s (%d), want product 1 at 90", got[0].ID, got[0].ConfidenceScore)
	}
	if got[0].ComfortScore != 80 {
		t.Errorf("comfort = %d, want 80", got[0].ComfortScore)
	}
	if got[1].Reasoning != "Loose match." {
		t.Errorf("reasoning = %q", got[1].Reasoning)
	}
}

func TestAnalyze_UncoveredProductsGetKeywordScores(t *testing.T) {
	ai := &fakeAIClient{
		enabled: true,
		analyzeResp: []AIProductScore{
			{ID: "1", ConfidenceScore: 90, Reasoning: "Great."},
		},
	}
	analyzer := newTestAnalyzer(t, ai)

	products := []model.Product{
		{ID: "1", Title: "Oversized Blazer", Brand: "Zara"},
		{ID: "2", Title: "Wool Scarf", Brand: "Uniqlo"},
	}
	got := analyzer.Analyze(context.Background(), products, "blazer", nil, nil)

	if len(got) != 2 {
		t.Fatalf("got %d products, want both", len(got))
	}
	for _, p := range got {
		if p.ID == "2" && p.Reasoning == "Great." {
			t.Error("product 2 should carry a keyword fallback score, not the LLM one")
		}
		if p.ConfidenceScore == 0 {
			t.Errorf("product %s left unscored", p.ID)
		}
	}
}

func TestAnalyze_TrendConfidenceFromStore(t *testing.T) {
	// The LLM names the trend; the High/Medium/Low label must come from the
	// store's deterministic score, never from the model.
	ai := &fakeAIClient{
		enabled: true,
		analyzeResp: []AIProductScore{
			{ID: "1", ConfidenceScore: 92, Reasoning: "On trend.", TrendReference: strPtr("relaxed tailoring")},
		},
	}
	analyzer := newTestAnalyzer(t, ai)

	products := []model.Product{{ID: "1", Title: "Oversized Blazer", Brand: "Zara"}}
	got := analyzer.Analyze(context.Background(), products, "relaxed oversized blazer for office", nil, nil)

	if got[0].TrendReference == nil {
		t.Fatal("trend reference not carried over")
	}
	if got[0].TrendConfidence == nil {
		t.Fatal("trend confidence label missing")
	}
	// Relaxed Tailoring has 5 sources, so the store scores it 0.90 = High
	if *got[0].TrendConfidence != "High" {
		t.Errorf("trend confidence = %q, want High", *got[0].TrendConfidence)
	}
}

func TestAnalyze_UnretrievedTrendReferenceGetsNoLabel(t *testing.T) {
	ai := &fakeAIClient{
		enabled: true,
		analyzeResp: []AIProductScore{
			{ID: "1", ConfidenceScore: 92, Reasoning: "On trend.", TrendReference: strPtr("Invented Trendwave")},
		},
	}
	analyzer := newTestAnalyzer(t, ai)

	products := []model.Product{{ID: "1", Title: "Oversized Blazer", Brand: "Zara"}}
	got := analyzer.Analyze(context.Background(), products, "relaxed oversized blazer for office", nil, nil)

	if got[0].TrendConfidence != nil {
		t.Error("a trend the store never returned must not get a confidence label")
	}
}

func TestAnalyze_ErrorFallsBackWholesale(t *testing.T) {
	ai := &fakeAIClient{enabled: true, analyzeErr: errors.New("model overloaded")}
	analyzer := newTestAnalyzer(t, ai)

	products := []model.Product{
		{ID: "1", Title: "Oversized Blazer", Brand: "Zara"},
		{ID: "2", Title: "White Cotton Shirt", Brand: "Roadster"},
	}
	got := analyzer.Analyze(context.Background(), products, "shirt", nil, nil)

	if len(got) != 2 {
		t.Fatalf("got %d products, want both via fallback", len(got))
	}
	for _, p := range got {
		if p.TrendReference != nil {
			t.Errorf("product %s kept LLM output after a failed analysis", p.ID)
		}
		if p.ConfidenceScore == 0 {
			t.Errorf("product %s left unscored", p.ID)
		}
	}
}

func TestAnalyze_BatchesFirstEight(t *testing.T) {
	ai := &fakeAIClient{enabled: true}
	analyzer := newTestAnalyzer(t, ai)

	products := make([]model.Product, 12)
	for i := range products {
		products[i] = model.Product{ID: fmt.Sprintf("p%d", i), Title: "Cotton Shirt", Brand: "Roadster"}
	}
	got := analyzer.Analyze(context.Background(), products, "shirt", nil, nil)

	if ai.analyzeCalls != 1 {
		t.Errorf("analyze calls = %d, want 1", ai.analyzeCalls)
	}
	if len(ai.lastProducts) != 8 {
		t.Errorf("LLM saw %d products, want the first 8", len(ai.lastProducts))
	}
	if len(got) != 12 {
		t.Errorf("got %d products, want all 12 back", len(got))
	}
}

func TestAnalyze_NoTrendContextFabrication(t *testing.T) {
	ai := &fakeAIClient{enabled: true}
	analyzer := newTestAnalyzer(t, ai)

	products := []model.Product{{ID: "1", Title: "Widget", Brand: "Acme"}}
	analyzer.Analyze(context.Background(), products, "xyzzy quux", nil, nil)

	if !strings.Contains(ai.lastContext, "Do NOT fabricate") {
		t.Error("prompt for a trendless query must forbid inventing trends")
	}
}
