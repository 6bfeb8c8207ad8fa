package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// DefaultPlatforms is the free-tier platform set every intent falls back to
var DefaultPlatforms = []string{"myntra", "zara", "hm", "uniqlo"}

// QueryInterpreter turns a natural language shopping query into a structured
// SearchIntent. Uses the LLM when available, with a deterministic rule parser
// as the full fallback (no partial merge: any LLM failure means the rule
// parser owns the whole intent).
type QueryInterpreter struct {
	ai AIClient
}

// NewQueryInterpreter creates a query interpreter
func NewQueryInterpreter(ai AIClient) *QueryInterpreter {
	return &QueryInterpreter{ai: ai}
}

// Interpret parses the query into a SearchIntent. Never fails: the rule
// parser always produces a usable intent with a non-empty platform list.
func (qi *QueryInterpreter) Interpret(ctx context.Context, query string) model.SearchIntent {
	if qi.ai != nil && qi.ai.IsEnabled() {
		resp, err := qi.ai.InterpretQuery(ctx, query)
		if err == nil {
			return intentFromAI(query, resp)
		}
		log.Printf("[Interpreter] AI interpretation failed, falling back to rules: %v", err)
	}
	return ruleBasedIntent(query)
}

// intentFromAI converts a validated AI response into a SearchIntent
func intentFromAI(query string, resp *AIIntentResponse) model.SearchIntent {
	intent := model.SearchIntent{
		Query:            query,
		Category:         resp.Category,
		Style:            resp.Style,
		Occasion:         resp.Occasion,
		NegativeKeywords: resp.NegativeKeywords,
		Platforms:        append([]string(nil), DefaultPlatforms...),
	}
	if resp.Category != "" {
		intent.Query = resp.Category
	}
	if resp.ProductType != "" {
		intent.ProductType = model.ProductType(resp.ProductType)
	}
	if resp.PriceMin != nil || resp.PriceMax != nil {
		intent.PriceRange = &model.PriceRange{Min: resp.PriceMin, Max: resp.PriceMax}
	}
	return intent
}

// occasionRule maps occasion cues to the style and negative keywords applied
// when that occasion wins
type occasionRule struct {
	occasion         string
	style            string
	negativeKeywords []string
}

var (
	officeCues  = []string{"office", "formal", "work", "meeting", "interview"}
	partyCues   = []string{"party", "club", "night out", "cocktail", "celebration"}
	casualCues  = []string{"casual", "daily", "everyday", "weekend"}
	beachCues   = []string{"beach", "vacation", "resort", "pool"}
	weddingCues = []string{"wedding", "sangeet", "mehendi"}
)

// officePartyRule handles the composite "office party" occasion: semi-formal,
// neither too casual nor beachy. Checked before the individual occasions.
var officePartyRule = occasionRule{
	occasion: "office party",
	style:    "smart casual",
	negativeKeywords: []string{
		"beach", "beachwear", "shorts", "flip flop", "slipper", "bikini", "swimwear",
		"torn", "ripped", "distressed", "crop top", "tank top", "sleeveless",
		"casual summer", "vacation", "resort", "boho",
	},
}

var officeRule = occasionRule{
	occasion: "office",
	style:    "formal",
	negativeKeywords: []string{
		"shorts", "beach", "slipper", "casual", "party", "club", "bikini",
		"swimwear", "flip flop", "crop", "torn", "ripped", "vacation",
		"bohemian", "festival", "lounge", "sleep",
	},
}

var partyRule = occasionRule{
	occasion: "party",
	style:    "party",
	negativeKeywords: []string{
		"formal", "office", "plain", "boring", "work", "meeting",
		"conservative", "interview", "business",
	},
}

var beachRule = occasionRule{
	occasion:         "beach",
	style:            "resort",
	negativeKeywords: []string{"formal", "suit", "blazer", "office", "work"},
}

var weddingRule = occasionRule{
	occasion:         "wedding",
	style:            "ethnic",
	negativeKeywords: []string{"casual", "daily", "torn", "ripped", "shorts", "jeans"},
}

var casualRule = occasionRule{
	occasion:         "casual",
	style:            "casual",
	negativeKeywords: []string{"gown", "suit", "blazer", "formal", "cocktail"},
}

// categoryPattern maps a query phrasing to a canonical category and product
// type. Ordered: the first matching pattern wins, so more specific phrasings
// (kurta as topwear) sit above broader ones (ethnic wear).
type categoryPattern struct {
	pattern     *regexp.Regexp
	category    string
	productType model.ProductType
}

var categoryPatterns = []categoryPattern{
	{regexp.MustCompile(`(?i)\b(shirts?|kurtas?|kurti|tunic)\b`), "shirt", model.ProductTypeTopwear},
	{regexp.MustCompile(`(?i)\b(t-?shirts?|tees?)\b`), "tshirt", model.ProductTypeTopwear},
	{regexp.MustCompile(`(?i)\b(tops?|blouses?|cami|tank)\b`), "top", model.ProductTypeTopwear},
	{regexp.MustCompile(`(?i)\b(sweaters?|hoodies?|sweatshirts?|cardigans?)\b`), "sweater", model.ProductTypeTopwear},
	{regexp.MustCompile(`(?i)\b(dress|dresses|gown|gowns|maxi|midi)\b`), "dress", model.ProductTypeDresses},
	{regexp.MustCompile(`(?i)\b(jeans|denims?)\b`), "jeans", model.ProductTypeBottomwear},
	{regexp.MustCompile(`(?i)\b(pants?|trousers?|chinos?|joggers?|cargo)\b`), "pants", model.ProductTypeBottomwear},
	{regexp.MustCompile(`(?i)\b(shorts)\b`), "shorts", model.ProductTypeBottomwear},
	{regexp.MustCompile(`(?i)\b(skirts?|leggings?|palazzos?|culottes)\b`), "skirt", model.ProductTypeBottomwear},
	{regexp.MustCompile(`(?i)\b(shoes?|sneakers?|loafers?|boots?|heels?|sandals?|flats?)\b`), "shoes", model.ProductTypeFootwear},
	{regexp.MustCompile(`(?i)\b(blazers?|jackets?|coats?)\b`), "blazer", model.ProductTypeTopwear},
	{regexp.MustCompile(`(?i)\b(bags?|handbags?|clutch|wallet|purse)\b`), "bag", model.ProductTypeAccessories},
	{regexp.MustCompile(`(?i)\b(watch|watches|earrings?|necklace|bracelet|ring|jewel)`), "accessory", model.ProductTypeAccessories},
	{regexp.MustCompile(`(?i)\b(sarees?|sari)\b`), "saree", model.ProductTypeEthnic},
	{regexp.MustCompile(`(?i)\b(lehengas?|anarkali|sharara|salwar|churidar)\b`), "lehenga", model.ProductTypeEthnic},
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

// ruleBasedIntent is the deterministic interpreter used when the LLM is
// unavailable or fails
func ruleBasedIntent(query string) model.SearchIntent {
	lowerQuery := strings.ToLower(query)

	intent := model.SearchIntent{
		Query:     query,
		Platforms: append([]string(nil), DefaultPlatforms...),
	}

	isOffice := containsAny(lowerQuery, officeCues)
	isParty := containsAny(lowerQuery, partyCues)
	isCasual := containsAny(lowerQuery, casualCues)
	isBeach := containsAny(lowerQuery, beachCues)
	isWedding := containsAny(lowerQuery, weddingCues)

	// Composite occasion first: "office party" is its own thing, not office
	// and not party
	var rule *occasionRule
	switch {
	case isOffice && isParty:
		rule = &officePartyRule
	case isOffice:
		rule = &officeRule
	case isParty:
		rule = &partyRule
	case isBeach:
		rule = &beachRule
	case isWedding:
		rule = &weddingRule
	case isCasual:
		rule = &casualRule
	}
	if rule != nil {
		intent.Occasion = rule.occasion
		intent.Style = rule.style
		intent.NegativeKeywords = append([]string(nil), rule.negativeKeywords...)
	}

	for _, cp := range categoryPatterns {
		if cp.pattern.MatchString(lowerQuery) {
			intent.Category = cp.category
			intent.ProductType = cp.productType
			break
		}
	}

	return intent
}
