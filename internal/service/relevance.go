package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/utils"
)

// FilterByRelevance scores catalog products against a query and drops the
// clearly irrelevant ones. Weights: +50 full query substring in title, +15
// per query keyword found in title+brand, +10 when a keyword hits the brand.
// Products scoring 10 or less are dropped; if fewer than 3 survive, the top
// 5 by raw score are returned instead so the caller never goes empty-handed
// on a stocked catalog.
func FilterByRelevance(products []model.Product, query string) []model.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return products
	}

	searchQuery := strings.ToLower(query)
	keywords := utils.QueryKeywords(searchQuery)

	type scored struct {
		product model.Product
		score   int
	}

	scoredProducts := make([]scored, 0, len(products))
	for _, p := range products {
		titleLower := strings.ToLower(p.Title)
		brandLower := strings.ToLower(p.Brand)
		combined := titleLower + " " + brandLower

		score := 0
		if strings.Contains(titleLower, searchQuery) {
			score += 50
		}
		for _, keyword := range keywords {
			if strings.Contains(combined, keyword) {
				score += 15
			}
		}
		for _, keyword := range keywords {
			if strings.Contains(brandLower, keyword) {
				score += 10
				break
			}
		}

		scoredProducts = append(scoredProducts, scored{product: p, score: score})
	}

	sort.SliceStable(scoredProducts, func(i, j int) bool {
		return scoredProducts[i].score > scoredProducts[j].score
	})

	relevant := make([]model.Product, 0, len(scoredProducts))
	for _, sp := range scoredProducts {
		if sp.score > 10 {
			relevant = append(relevant, sp.product)
		}
	}

	if len(relevant) < 3 {
		n := 5
		if n > len(scoredProducts) {
			n = len(scoredProducts)
		}
		top := make([]model.Product, 0, n)
		for _, sp := range scoredProducts[:n] {
			top = append(top, sp.product)
		}
		return top
	}

	return relevant
}

// keyword buckets for category co-occurrence scoring
var categoryBuckets = []struct {
	name     string
	keywords []string
}{
	{"shirt", []string{"shirt", "kurta", "blouse", "top", "polo"}},
	{"pants", []string{"pants", "jeans", "trousers", "chinos", "joggers"}},
	{"dress", []string{"dress", "gown", "frock", "maxi", "midi"}},
	{"shoes", []string{"shoes", "sneakers", "loafers", "heels", "sandals", "boots"}},
	{"formal", []string{"blazer", "suit", "formal", "office"}},
	{"casual", []string{"casual", "t-shirt", "tee", "hoodie", "sweatshirt"}},
}

// KeywordMatchScore scores one product against a query without any LLM.
// Used as the analyzer fallback. Returns a 0-100 score plus a human-readable
// reasoning line.
func KeywordMatchScore(product model.Product, query string) (int, string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 50, "General product recommendation."
	}

	queryLower := strings.ToLower(query)
	queryKeywords := utils.QueryKeywords(queryLower)
	titleLower := strings.ToLower(product.Title)
	brandLower := strings.ToLower(product.Brand)
	combinedText := titleLower + " " + brandLower

	score := 30
	var matched []string

	if strings.Contains(titleLower, queryLower) {
		score += 30
		matched = append(matched, "exact match")
	}

	keywordBonus := 0
	for _, keyword := range queryKeywords {
		if strings.Contains(combinedText, keyword) {
			keywordBonus += 10
			matched = append(matched, keyword)
		}
	}
	if keywordBonus > 30 {
		keywordBonus = 30
	}
	score += keywordBonus

	for _, keyword := range queryKeywords {
		if strings.Contains(brandLower, keyword) {
			score += 10
			break
		}
	}

	for _, bucket := range categoryBuckets {
		queryHas := false
		productHas := false
		for _, k := range bucket.keywords {
			if strings.Contains(queryLower, k) {
				queryHas = true
			}
			if strings.Contains(titleLower, k) {
				productHas = true
			}
		}
		if queryHas && productHas {
			score += 15
			matched = append(matched, bucket.name)
			break
		}
	}

	// 96-100 is reserved for LLM-analyzed matches
	if score > 95 {
		score = 95
	}

	if len(matched) == 0 {
		if score < 25 {
			score = 25
		}
		return score, "Browse option based on your search."
	}

	unique := dedupe(matched)
	if len(unique) > 3 {
		unique = unique[:3]
	}
	return score, fmt.Sprintf("Matches your search for %s.", strings.Join(unique, ", "))
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
