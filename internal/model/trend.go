package model

import "time"

// Trend is one curated fashion-trend fact. ConfidenceScore and Embedding are
// derived during store initialization; the record is read-only afterwards.
type Trend struct {
	TrendID         string    `json:"trend_id"`
	TrendName       string    `json:"trend_name"`
	Description     string    `json:"description"`
	Source          string    `json:"source"`
	SourcesCount    int       `json:"sources_count"`
	Category        string    `json:"category"` // casual, office, party, ethnic, any
	Season          string    `json:"season"`
	Keywords        []string  `json:"keywords"`
	ConfidenceScore float64   `json:"confidence_score"` // 0-1, deterministic, never LLM-derived
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	Embedding       []float64 `json:"-"` // nil forces keyword-search fallback
}

// Expired reports whether the trend has passed its expiry at the given time.
func (t *Trend) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// RetrievalMethod records which retrieval path produced the result set.
type RetrievalMethod string

const (
	RetrievalVector   RetrievalMethod = "vector"
	RetrievalKeyword  RetrievalMethod = "keyword"
	RetrievalFallback RetrievalMethod = "fallback"
)

// TrendRetrievalOptions controls the RAG retrieval pipeline.
type TrendRetrievalOptions struct {
	MinConfidence  float64 // default 0.6
	TopK           int     // default 3
	Category       string  // optional filter, "" means any
	IncludeExpired bool
}

// RetrievalResult is the outcome of one trend retrieval. Method is an
// observability signal, not behavior-altering for callers.
type RetrievalResult struct {
	Trends []Trend         `json:"trends"`
	Method RetrievalMethod `json:"method"`
	Query  string          `json:"query"`
}
