package service

import (
	"log"
	"regexp"
	"strings"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// categoryRules defines, per product type, which title/brand words keep a
// product in and which throw it out. Exclusions are absolute and are checked
// first; a product matching neither list is dropped (default-deny), so a
// "velvet cushion cover" never survives a dresses search.
type categoryRules struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

func patterns(words ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile("(?i)"+w))
	}
	return out
}

var categoryKeywords = map[model.ProductType]categoryRules{
	model.ProductTypeTopwear: {
		include: patterns("shirt", "t-shirt", "tee", "top", "blouse", "kurta", "tunic", "polo", "sweater", "hoodie", "sweatshirt", "cardigan", "vest", "crop", "tank", "cami"),
		exclude: patterns("shoe", "sandal", "heel", "sneaker", "loafer", "boot", "slipper", "bag", "handbag", "wallet", "belt", "watch", "earring", "necklace", "bracelet", "ring", "pant", "jeans", "trouser", "skirt", "shorts", "legging"),
	},
	model.ProductTypeBottomwear: {
		include: patterns("pant", "jeans", "trouser", "chino", "shorts", "skirt", "legging", "jogger", "cargo", "palazzo", "culottes"),
		exclude: patterns("shoe", "sandal", "heel", "sneaker", "bag", "handbag", "shirt", "top", "blouse", "t-shirt", "watch", "earring"),
	},
	model.ProductTypeDresses: {
		include: patterns("dress", "gown", "maxi", "midi", "mini dress", "bodycon", "a-line", "wrap dress", "shift dress", "sundress"),
		exclude: patterns("shoe", "sandal", "bag", "handbag", "shirt", "pant", "jeans", "watch", "earring"),
	},
	model.ProductTypeFootwear: {
		include: patterns("shoe", "sandal", "heel", "sneaker", "loafer", "boot", "slipper", "flat", "wedge", "mule", "oxford", "pump", "stiletto"),
		exclude: patterns("shirt", "pant", "dress", "bag", "watch", "skirt"),
	},
	model.ProductTypeAccessories: {
		include: patterns("bag", "handbag", "clutch", "wallet", "belt", "watch", "earring", "necklace", "bracelet", "ring", "scarf", "hat", "cap", "sunglasses"),
		exclude: patterns("shirt", "pant", "dress", "shoe", "jeans", "top"),
	},
	model.ProductTypeEthnic: {
		include: patterns("saree", "sari", "lehenga", "kurta", "kurti", "salwar", "churidar", "anarkali", "sharara", "palazzo", "dupatta", "ghagra"),
		exclude: patterns("shoe", "sandal", "bag", "watch", "jeans", "t-shirt"),
	},
}

// HardFilterByCategory drops products whose titles clearly do not belong to
// the intent's product type. Runs before AI ranking so the analyzer never
// sees, say, footwear for a dresses query. Identity when no product type was
// detected.
func HardFilterByCategory(products []model.Product, intent model.SearchIntent) []model.Product {
	if intent.ProductType == "" {
		return products
	}

	rules, ok := categoryKeywords[intent.ProductType]
	if !ok {
		return products
	}

	filtered := make([]model.Product, 0, len(products))
	for _, product := range products {
		text := strings.ToLower(product.Title + " " + product.Brand)

		excluded := false
		for _, pattern := range rules.exclude {
			if pattern.MatchString(text) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		for _, pattern := range rules.include {
			if pattern.MatchString(text) {
				filtered = append(filtered, product)
				break
			}
		}
	}

	log.Printf("[HardFilter] %s: %d -> %d products", intent.ProductType, len(products), len(filtered))

	return filtered
}

// FilterNegativeKeywords drops products whose title or brand contains any of
// the intent's negative keywords
func FilterNegativeKeywords(products []model.Product, negativeKeywords []string) []model.Product {
	if len(negativeKeywords) == 0 {
		return products
	}

	filtered := make([]model.Product, 0, len(products))
	for _, product := range products {
		text := strings.ToLower(product.Title + " " + product.Brand)
		blocked := false
		for _, kw := range negativeKeywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				blocked = true
				break
			}
		}
		if !blocked {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
