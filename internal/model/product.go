package model

// ProductType is the closed set of wearable categories the pipeline filters on.
type ProductType string

const (
	ProductTypeTopwear     ProductType = "topwear"
	ProductTypeBottomwear  ProductType = "bottomwear"
	ProductTypeDresses     ProductType = "dresses"
	ProductTypeFootwear    ProductType = "footwear"
	ProductTypeAccessories ProductType = "accessories"
	ProductTypeEthnic      ProductType = "ethnic"
)

// ValidProductType reports whether s is one of the known product types
func ValidProductType(s string) bool {
	switch ProductType(s) {
	case ProductTypeTopwear, ProductTypeBottomwear, ProductTypeDresses,
		ProductTypeFootwear, ProductTypeAccessories, ProductTypeEthnic:
		return true
	}
	return false
}

// Product represents one scraped or catalog item. Scoring stages append
// fields (ComfortScore, ConfidenceScore, Reasoning, TrendReference) as the
// product moves through the pipeline; nothing is ever removed.
type Product struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Price           string  `json:"price"` // digits only, currency-agnostic
	Brand           string  `json:"brand"`
	ImageURL        string  `json:"imageUrl"`
	ProductURL      string  `json:"productUrl"`
	Platform        string  `json:"platform"`
	ComfortScore    int     `json:"comfortScore,omitempty"`
	ConfidenceScore int     `json:"confidenceScore,omitempty"`
	Reasoning       string  `json:"reasoning,omitempty"`
	TrendReference  *string `json:"trendReference,omitempty"`
	TrendConfidence *string `json:"trendConfidence,omitempty"` // High / Medium / Low
}
