package model

// DiscoverySearchRequest is the body of POST /api/v1/discovery/search.
// The popup sends one platform per request; credit accounting happens
// upstream of this service.
type DiscoverySearchRequest struct {
	UserID      string         `json:"userId"`
	Query       string         `json:"query"`
	Platform    string         `json:"platform" binding:"required"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// UniversalSearchRequest is the body of POST /api/v1/search: one query fanned
// out across every platform the interpreted intent selects.
type UniversalSearchRequest struct {
	UserID      string         `json:"userId"`
	Query       string         `json:"query" binding:"required"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// AnalyzeRequest re-scores caller-supplied products against a query.
type AnalyzeRequest struct {
	Query       string         `json:"query" binding:"required"`
	Products    []Product      `json:"products" binding:"required"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// SuggestRequest asks for styling advice on a single product.
type SuggestRequest struct {
	Product     Product        `json:"product" binding:"required"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// BodyRecommendRequest asks for products suited to a body type.
type BodyRecommendRequest struct {
	UserID          string         `json:"userId"`
	BodyType        string         `json:"bodyType" binding:"required"`
	Height          string         `json:"height,omitempty"`
	StylePreference string         `json:"stylePreference,omitempty"`
	Preferences     map[string]any `json:"preferences,omitempty"`
}

// StyleGuide is the caller-facing slice of a body-type style mapping.
type StyleGuide struct {
	Flattering []string `json:"flattering"`
	Avoid      []string `json:"avoid"`
}

// BodyRecommendResponse is the reply to POST /api/v1/body-recommend.
type BodyRecommendResponse struct {
	Success       bool        `json:"success"`
	BodyType      string      `json:"bodyType,omitempty"`
	Products      []Product   `json:"products"`
	Reasoning     string      `json:"reasoning,omitempty"`
	StyleGuide    *StyleGuide `json:"styleGuide,omitempty"`
	MatchedTrends []string    `json:"matchedTrends,omitempty"`
	Error         string      `json:"error,omitempty"`
}

// SearchResponse is the common product-list reply shape.
type SearchResponse struct {
	Success  bool          `json:"success"`
	Products []Product     `json:"products"`
	Intent   *SearchIntent `json:"intent,omitempty"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
	Took     int64         `json:"took_ms"`
}

// SuggestResponse carries one styling suggestion.
type SuggestResponse struct {
	Success    bool   `json:"success"`
	Suggestion string `json:"suggestion"`
	Error      string `json:"error,omitempty"`
}

// SearchLogEntry is one completed search, recorded asynchronously for
// analytics. SearchID is assigned by the persistence layer.
type SearchLogEntry struct {
	SearchID    string `db:"search_id"`
	UserID      string `db:"user_id"`
	Query       string `db:"query"`
	Platform    string `db:"platform"`
	ResultCount int    `db:"result_count"`
	TookMs      int64  `db:"took_ms"`
}
