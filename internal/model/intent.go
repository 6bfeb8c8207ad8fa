package model

// PriceRange is an optional budget constraint extracted from the query.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// SearchIntent is the structured interpretation of a natural language query.
// Built once per request by the interpreter, immutable afterwards.
type SearchIntent struct {
	Query            string      `json:"query"`
	Category         string      `json:"category,omitempty"`
	ProductType      ProductType `json:"productType,omitempty"`
	PriceRange       *PriceRange `json:"priceRange,omitempty"`
	Style            string      `json:"style,omitempty"`
	Occasion         string      `json:"occasion,omitempty"`
	NegativeKeywords []string    `json:"negativeKeywords,omitempty"`
	Platforms        []string    `json:"platforms"` // never empty
}
