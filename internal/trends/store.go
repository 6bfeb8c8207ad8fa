package trends

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// embeddingVocab is the fixed style vocabulary the pseudo-embedding is built
// over. One dimension per token, order is part of the vector contract.
var embeddingVocab = []string{
	"relaxed", "formal", "casual", "party", "office", "summer", "winter",
	"elegant", "bold", "minimal", "colorful", "luxury", "comfort", "sporty",
	"traditional", "modern", "trendy", "vintage", "chic", "edgy", "feminine",
	"masculine", "neutral", "vibrant", "soft", "structured", "flowy", "fitted",
}

// Source supplies additional trends at initialization time, typically from a
// database. Implementations may return an empty slice.
type Source interface {
	LoadTrends(ctx context.Context) ([]model.Trend, error)
}

// Store is an in-memory trend vector store. Trends are loaded once via
// Initialize and are read-only afterwards; retrieval is safe for concurrent
// use. Confidence scores are derived deterministically, never by an LLM.
type Store struct {
	mu          sync.RWMutex
	trends      map[string]model.Trend
	initialized bool
	source      Source
	now         func() time.Time
}

// NewStore creates an uninitialized trend store. source may be nil.
func NewStore(source Source) *Store {
	return &Store{
		trends: make(map[string]model.Trend),
		source: source,
		now:    time.Now,
	}
}

// confidenceScore derives a 0-1 confidence from source count and recency.
// Pure backend logic, no AI involved.
func confidenceScore(trend model.Trend, now time.Time) float64 {
	score := 0.40
	switch {
	case trend.SourcesCount >= 5:
		score = 0.90
	case trend.SourcesCount >= 4:
		score = 0.85
	case trend.SourcesCount >= 3:
		score = 0.70
	case trend.SourcesCount >= 2:
		score = 0.60
	}

	// recency boost for trends created within the last 30 days
	if now.Sub(trend.CreatedAt) <= 30*24*time.Hour {
		score += 0.05
	}

	return math.Min(score, 1.0)
}

// Initialize loads the curated corpus (plus any Source trends), computing
// confidence scores and embeddings. Idempotent.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	log.Printf("[TrendStore] Initializing with curated trends...")

	now := s.now()
	load := func(trend model.Trend) {
		trend.ConfidenceScore = confidenceScore(trend, now)
		trend.Embedding = Embed(trend.TrendName + ": " + trend.Description)
		s.trends[trend.TrendID] = trend
	}

	for _, trend := range curatedTrends {
		load(trend)
	}

	if s.source != nil {
		extra, err := s.source.LoadTrends(ctx)
		if err != nil {
			// The curated corpus is enough to operate on; a broken source
			// must not take retrieval down.
			log.Printf("[TrendStore] Warning: failed to load external trends: %v", err)
		} else {
			for _, trend := range extra {
				load(trend)
			}
		}
	}

	s.initialized = true
	log.Printf("[TrendStore] Loaded %d trends", len(s.trends))
	return nil
}

// Embed builds a bag-of-words vector over the fixed style vocabulary.
// A stand-in for a real embedding model; zero vectors simply never match in
// cosine search.
func Embed(text string) []float64 {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = true
	}

	vec := make([]float64, len(embeddingVocab))
	for i, v := range embeddingVocab {
		if words[v] {
			vec[i] = 1
		}
	}
	return vec
}

// cosineSimilarity returns 0 for mismatched lengths or zero-norm vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SearchByVector returns the topK trends most similar to the query embedding.
// Trends without embeddings and zero-similarity pairs are skipped.
func (s *Store) SearchByVector(queryEmbedding []float64, topK int) []model.Trend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		trend model.Trend
		score float64
	}
	results := make([]scored, 0, len(s.trends))
	for _, trend := range s.trends {
		if trend.Embedding == nil {
			continue
		}
		similarity := cosineSimilarity(queryEmbedding, trend.Embedding)
		if similarity > 0 {
			results = append(results, scored{trend: trend, score: similarity})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].trend.TrendID < results[j].trend.TrendID
	})

	if topK > len(results) {
		topK = len(results)
	}
	out := make([]model.Trend, 0, topK)
	for _, r := range results[:topK] {
		out = append(out, r.trend)
	}
	return out
}

// SearchByKeyword matches trends whose keywords, name, or category appear in
// the query. Fallback path when vector search yields nothing.
func (s *Store) SearchByKeyword(query string) []model.Trend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var results []model.Trend
	for _, trend := range s.trends {
		matches := strings.Contains(q, strings.ToLower(trend.TrendName)) ||
			strings.Contains(q, trend.Category)
		if !matches {
			for _, k := range trend.Keywords {
				if strings.Contains(q, k) {
					matches = true
					break
				}
			}
		}
		if matches {
			results = append(results, trend)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TrendID < results[j].TrendID
	})
	return results
}

// AllActive returns all non-expired trends
func (s *Store) AllActive() []model.Trend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []model.Trend
	for _, trend := range s.trends {
		if !trend.Expired(now) {
			out = append(out, trend)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrendID < out[j].TrendID
	})
	return out
}

// Retrieve is the RAG retrieval step that runs before any LLM reasoning.
// The LLM only ever sees trends returned here; it cannot reach trends that
// were not retrieved.
func (s *Store) Retrieve(query string, options model.TrendRetrievalOptions) model.RetrievalResult {
	opts := options
	if opts.MinConfidence == 0 {
		opts.MinConfidence = 0.6
	}
	if opts.TopK == 0 {
		opts.TopK = 3
	}

	// vector search first, over-fetching so the confidence and expiry
	// filters still leave enough candidates
	method := model.RetrievalVector
	retrieved := s.SearchByVector(Embed(query), opts.TopK*2)

	if len(retrieved) == 0 {
		method = model.RetrievalKeyword
		retrieved = s.SearchByKeyword(query)
	}

	filtered := retrieved[:0:0]
	for _, t := range retrieved {
		if t.ConfidenceScore < opts.MinConfidence {
			continue
		}
		filtered = append(filtered, t)
	}
	retrieved = filtered

	if !opts.IncludeExpired {
		now := s.now()
		filtered = retrieved[:0:0]
		for _, t := range retrieved {
			if !t.Expired(now) {
				filtered = append(filtered, t)
			}
		}
		retrieved = filtered
	}

	if opts.Category != "" {
		filtered = retrieved[:0:0]
		for _, t := range retrieved {
			if t.Category == opts.Category || t.Category == "any" {
				filtered = append(filtered, t)
			}
		}
		retrieved = filtered
	}

	if len(retrieved) > opts.TopK {
		retrieved = retrieved[:opts.TopK]
	}

	if len(retrieved) == 0 {
		method = model.RetrievalFallback
	}

	log.Printf("[RAG] Retrieved %d trends via %s for query: %q", len(retrieved), method, query)

	return model.RetrievalResult{
		Trends: retrieved,
		Method: method,
		Query:  query,
	}
}

// ConfidenceLabel maps a 0-1 confidence score to its display label
func ConfidenceLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "High"
	case score >= 0.6:
		return "Medium"
	default:
		return "Low"
	}
}

// FormatForLLM renders trends as prompt context lines
func FormatForLLM(trendList []model.Trend) string {
	if len(trendList) == 0 {
		return "No specific fashion trends matched for this query."
	}

	var b strings.Builder
	b.WriteString("Current Fashion Trends:\n")
	for _, t := range trendList {
		fmt.Fprintf(&b, "- [%s] (%s confidence, source: %s): %s\n",
			t.TrendName, ConfidenceLabel(t.ConfidenceScore), t.Source, t.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
