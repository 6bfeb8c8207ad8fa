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

// bodyRecommendPlatforms are the platforms fanned out for body-type
// recommendations; the discount marketplaces add too much noise here.
var bodyRecommendPlatforms = []string{"myntra", "zara", "hm"}

const (
	bodyRecoBatchSize    = 6
	bodyRecoMaxProducts  = 8
	bodyRecoDefaultScore = 70
)

// BodyStyleGuide maps a body type to the silhouettes that flatter it.
type BodyStyleGuide struct {
	Flattering  []string
	Avoid       []string
	Keywords    []string
	Description string
}

// bodyStyleMap follows common fashion styling guidelines.
var bodyStyleMap = map[string]BodyStyleGuide{
	"apple": {
		Flattering:  []string{"A-line dresses", "V-neck tops", "empire waist", "flowy tops", "structured blazers", "bootcut pants"},
		Avoid:       []string{"tight waists", "clingy fabrics", "horizontal stripes on midsection"},
		Keywords:    []string{"a-line", "v-neck", "empire", "flowy", "structured", "bootcut", "wrap"},
		Description: "Apple body types look best in styles that elongate the torso and define the waist from above.",
	},
	"pear": {
		Flattering:  []string{"boat neck", "structured shoulders", "A-line skirts", "wide-leg pants", "statement tops", "fit-and-flare dresses"},
		Avoid:       []string{"skinny jeans", "pencil skirts", "hip-hugging styles"},
		Keywords:    []string{"boat neck", "structured", "a-line", "wide-leg", "flare", "statement"},
		Description: "Pear body types look stunning with styles that balance the shoulders with the hips.",
	},
	"hourglass": {
		Flattering:  []string{"fitted waists", "wrap dresses", "high-waisted bottoms", "belted styles", "bodycon", "pencil skirts"},
		Avoid:       []string{"boxy shapes", "oversized everything", "shapeless dresses"},
		Keywords:    []string{"fitted", "wrap", "high-waisted", "belted", "bodycon", "pencil", "defined waist"},
		Description: "Hourglass figures look amazing in styles that highlight the natural waist and balanced proportions.",
	},
	"rectangle": {
		Flattering:  []string{"peplum tops", "belted styles", "layered looks", "ruffles", "textured fabrics", "asymmetric cuts"},
		Avoid:       []string{"straight shapeless dresses", "column silhouettes"},
		Keywords:    []string{"peplum", "belted", "layered", "ruffle", "textured", "asymmetric", "tiered"},
		Description: "Rectangle body types look great with styles that create curves and add dimension.",
	},
	"inverted-triangle": {
		Flattering:  []string{"wide-leg pants", "V-necks", "A-line skirts", "flared bottoms", "wrap tops", "darker tops"},
		Avoid:       []string{"shoulder pads", "boat necks", "horizontal stripes on top"},
		Keywords:    []string{"wide-leg", "v-neck", "a-line", "flared", "wrap", "soft shoulders"},
		Description: "Inverted triangle body types look balanced with styles that add volume to the lower half.",
	},
}

// BodyTypes lists the supported body types, sorted for stable error messages.
func BodyTypes() []string {
	out := make([]string, 0, len(bodyStyleMap))
	for k := range bodyStyleMap {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// BodyRecommendation is one assembled recommendation set.
type BodyRecommendation struct {
	Products      []model.Product
	Reasoning     string
	StyleGuide    BodyStyleGuide
	MatchedTrends []string
}

// StyleRecommender recommends products for a body type. It derives a search
// query from the style guide, retrieves matching trends, fetches live
// products, keeps the ones the relevance scorer ties to the guide keywords,
// and finally lets the LLM rate the survivors for the body type.
type StyleRecommender struct {
	ai      AIClient
	store   *trends.Store
	fetcher ProductFetcher
}

// NewStyleRecommender wires a body-type recommender.
func NewStyleRecommender(ai AIClient, store *trends.Store, fetcher ProductFetcher) *StyleRecommender {
	return &StyleRecommender{ai: ai, store: store, fetcher: fetcher}
}

// Recommend builds the product set for one body type. Unknown body types are
// the only error; every downstream stage degrades instead of failing.
func (r *StyleRecommender) Recommend(ctx context.Context, req model.BodyRecommendRequest) (BodyRecommendation, error) {
	guide, ok := bodyStyleMap[req.BodyType]
	if !ok {
		return BodyRecommendation{}, fmt.Errorf("invalid body type %q, must be one of: %s",
			req.BodyType, strings.Join(BodyTypes(), ", "))
	}

	searchQuery := strings.Join(guide.Keywords[:3], " ") + " clothing"
	if req.StylePreference != "" && req.StylePreference != "any" {
		searchQuery = req.StylePreference + " " + searchQuery
	}

	retrieval := r.store.Retrieve(searchQuery, model.TrendRetrievalOptions{
		MinConfidence: 0.5,
		TopK:          2,
	})
	matched := make([]string, 0, len(retrieval.Trends))
	for _, t := range retrieval.Trends {
		matched = append(matched, t.TrendName)
	}

	products := r.fetcher.FetchPlatforms(ctx, bodyRecommendPlatforms, searchQuery)
	log.Printf("[BodyReco] %s: %d products fetched for %q", req.BodyType, len(products), searchQuery)

	products = FilterByRelevance(products, strings.Join(guide.Keywords, " "))

	if r.ai != nil && r.ai.IsEnabled() && len(products) > 0 {
		products = r.scoreForBodyType(ctx, products, guide, retrieval.Trends, req)
	} else {
		products = defaultBodyScores(products, req.BodyType)
	}

	if len(products) > bodyRecoMaxProducts {
		products = products[:bodyRecoMaxProducts]
	}

	return BodyRecommendation{
		Products:      products,
		Reasoning:     bodyRecoReasoning(guide, matched),
		StyleGuide:    guide,
		MatchedTrends: matched,
	}, nil
}

// scoreForBodyType sends a batch to the LLM with the style guide as context
// and merges the scores back. A failed call falls back to the default scores.
func (r *StyleRecommender) scoreForBodyType(ctx context.Context, products []model.Product, guide BodyStyleGuide, retrieved []model.Trend, req model.BodyRecommendRequest) []model.Product {
	height := req.Height
	if height == "" {
		height = "medium"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are styling for a %s body type. %s\n", strings.ToUpper(req.BodyType), guide.Description)
	fmt.Fprintf(&b, "Flattering styles: %s\n", strings.Join(guide.Flattering, ", "))
	fmt.Fprintf(&b, "Styles to avoid: %s\n", strings.Join(guide.Avoid, ", "))
	fmt.Fprintf(&b, "Height: %s\n", height)
	if req.StylePreference != "" {
		fmt.Fprintf(&b, "Style preference: %s\n", req.StylePreference)
	}
	if len(req.Preferences) > 0 {
		if prefsJSON, err := json.Marshal(req.Preferences); err == nil {
			fmt.Fprintf(&b, "User comfort preferences: %s\n", string(prefsJSON))
		}
	}
	b.WriteString("\n")
	b.WriteString(trends.FormatForLLM(retrieved))

	batch := products
	if len(batch) > bodyRecoBatchSize {
		batch = batch[:bodyRecoBatchSize]
	}

	scores, err := r.ai.AnalyzeProducts(ctx, "styles for "+req.BodyType+" body type", b.String(), batch)
	if err != nil {
		log.Printf("[BodyReco] Analysis failed, using default scores: %v", err)
		return defaultBodyScores(products, req.BodyType)
	}

	scoreByID := make(map[string]AIProductScore, len(scores))
	for _, s := range scores {
		scoreByID[s.ID] = s
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		analysis, ok := scoreByID[p.ID]
		if !ok {
			out = append(out, defaultBodyScore(p, req.BodyType))
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

func defaultBodyScores(products []model.Product, bodyType string) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		out = append(out, defaultBodyScore(p, bodyType))
	}
	return out
}

func defaultBodyScore(p model.Product, bodyType string) model.Product {
	p.ConfidenceScore = bodyRecoDefaultScore
	p.ComfortScore = bodyRecoDefaultScore
	p.Reasoning = fmt.Sprintf("Great choice for %s body type.", bodyType)
	return p
}

func bodyRecoReasoning(guide BodyStyleGuide, matched []string) string {
	reasoning := guide.Description
	if len(matched) > 0 {
		reasoning += fmt.Sprintf(" Based on current trends like %s,", strings.Join(matched, " and "))
	} else {
		reasoning += " Based on current trends,"
	}
	reasoning += fmt.Sprintf(" we recommend %s.", strings.Join(guide.Flattering[:2], " and "))
	return reasoning
}
