package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/trends"
)

// analyzerBatchSize caps how many products go to the LLM per analysis; the
// rest are scored by the keyword fallback during the merge
const analyzerBatchSize = 8

// TrendAnalyzer ranks products for a query using retrieval-augmented LLM
// analysis. Trends are retrieved from the store first and the LLM reasons
// only over that retrieved context, so it cannot cite a trend the store
// never returned.
type TrendAnalyzer struct {
	ai    AIClient
	store *trends.Store
}

// NewTrendAnalyzer creates a trend-augmented analyzer
func NewTrendAnalyzer(ai AIClient, store *trends.Store) *TrendAnalyzer {
	return &TrendAnalyzer{ai: ai, store: store}
}

// Analyze scores and sorts products for the query. trendsHint is advisory
// only: the analyzer always retrieves its own trend context so callers cannot
// inject trends the store never vetted. Degrades to deterministic keyword
// scoring when the LLM is unavailable or fails; the fallback is
// all-or-nothing so a half-parsed LLM response never produces mixed output.
func (a *TrendAnalyzer) Analyze(ctx context.Context, products []model.Product, query string, trendsHint []model.Trend, preferences map[string]any) []model.Product {
	if a.ai == nil || !a.ai.IsEnabled() || len(products) == 0 {
		return a.keywordFallback(products, query)
	}

	if len(trendsHint) > 0 {
		log.Printf("[Analyzer] Ignoring %d caller-supplied trends, retrieving from store", len(trendsHint))
	}
	retrieval := a.store.Retrieve(query, model.TrendRetrievalOptions{
		MinConfidence: 0.6,
		TopK:          3,
	})
	retrieved := retrieval.Trends
	log.Printf("[Analyzer] Retrieved %d trends via %s", len(retrieved), retrieval.Method)

	trendContext := trends.FormatForLLM(retrieved)
	if len(preferences) > 0 {
		if prefsJSON, err := json.Marshal(preferences); err == nil {
			trendContext += fmt.Sprintf("\n\nUser comfort preferences: %s", string(prefsJSON))
		}
	}
	if len(retrieved) == 0 {
		trendContext += "\n\nIMPORTANT: No specific trends matched this query. Base your analysis on the query and user preferences only. Do NOT fabricate or invent trend names."
	}

	batch := products
	if len(batch) > analyzerBatchSize {
		batch = batch[:analyzerBatchSize]
	}

	scores, err := a.ai.AnalyzeProducts(ctx, query, trendContext, batch)
	if err != nil {
		log.Printf("[Analyzer] Analysis failed, falling back to keyword scoring: %v", err)
		return a.keywordFallback(products, query)
	}

	scoreByID := make(map[string]AIProductScore, len(scores))
	for _, s := range scores {
		scoreByID[s.ID] = s
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		analysis, ok := scoreByID[p.ID]
		if !ok {
			// products beyond the batch, or ids the model dropped
			score, reasoning := KeywordMatchScore(p, query)
			p.ConfidenceScore = score
			p.ComfortScore = score
			p.Reasoning = reasoning
			out = append(out, p)
			continue
		}

		p.ConfidenceScore = analysis.ConfidenceScore
		p.ComfortScore = analysis.ComfortScore
		if p.ComfortScore == 0 {
			p.ComfortScore = analysis.ConfidenceScore
		}
		p.Reasoning = analysis.Reasoning
		p.TrendReference = analysis.TrendReference

		if analysis.TrendReference != nil {
			if trend, found := findTrend(retrieved, *analysis.TrendReference); found {
				label := trends.ConfidenceLabel(trend.ConfidenceScore)
				p.TrendConfidence = &label
			}
		}
		out = append(out, p)
	}

	sortByConfidence(out)
	return out
}

// keywordFallback scores every product deterministically
func (a *TrendAnalyzer) keywordFallback(products []model.Product, query string) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		score, reasoning := KeywordMatchScore(p, query)
		p.ConfidenceScore = score
		p.ComfortScore = score
		p.Reasoning = reasoning
		p.TrendReference = nil
		p.TrendConfidence = nil
		out = append(out, p)
	}
	sortByConfidence(out)
	return out
}

func findTrend(trendList []model.Trend, name string) (model.Trend, bool) {
	for _, t := range trendList {
		if strings.EqualFold(t.TrendName, name) {
			return t, true
		}
	}
	return model.Trend{}, false
}

func sortByConfidence(products []model.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].ConfidenceScore > products[j].ConfidenceScore
	})
}
