package trends

import (
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// curatedTrends is the built-in trend corpus, summarized from public fashion
// sources (Vogue, GQ, Elle and editorial roundups). ConfidenceScore and
// Embedding are left zero here; the store derives them at Initialize.
var curatedTrends = []model.Trend{
	// multiple sources
	{
		TrendID:      "trend_001",
		TrendName:    "Relaxed Tailoring",
		Description:  "Oversized blazers and loose-fit trousers replace structured power suits. Comfort meets professionalism.",
		Source:       "Vogue",
		SourcesCount: 5,
		Category:     "office",
		Season:       "Any",
		Keywords:     []string{"relaxed", "oversized", "blazer", "loose", "tailoring", "unstructured"},
		CreatedAt:    date(2025, 12, 1),
		ExpiresAt:    date(2027, 6, 1),
	},
	{
		TrendID:      "trend_002",
		TrendName:    "Quiet Luxury",
		Description:  "Understated elegance with neutral tones, minimal logos, and premium fabrics. Less is more.",
		Source:       "Elle",
		SourcesCount: 6,
		Category:     "any",
		Season:       "Any",
		Keywords:     []string{"quiet", "luxury", "minimal", "neutral", "understated", "elegant", "premium"},
		CreatedAt:    date(2025, 11, 15),
		ExpiresAt:    date(2027, 12, 1),
	},
	{
		TrendID:      "trend_003",
		TrendName:    "Dopamine Dressing",
		Description:  "Bold, vibrant colors that spark joy. Hot pink, electric blue, and sunshine yellow dominate.",
		Source:       "Vogue",
		SourcesCount: 4,
		Category:     "party",
		Season:       "Summer",
		Keywords:     []string{"dopamine", "bold", "vibrant", "colorful", "pink", "bright", "joy"},
		CreatedAt:    date(2025, 12, 20),
		ExpiresAt:    date(2027, 9, 1),
	},
	{
		TrendID:      "trend_004",
		TrendName:    "Coastal Grandmother",
		Description:  "Breezy linen, soft knits, and nautical stripes. Effortless seaside elegance.",
		Source:       "GQ",
		SourcesCount: 4,
		Category:     "casual",
		Season:       "Summer",
		Keywords:     []string{"coastal", "linen", "nautical", "stripe", "breezy", "beach", "seaside", "summer"},
		CreatedAt:    date(2025, 10, 1),
		ExpiresAt:    date(2027, 8, 1),
	},
	// 2-3 sources
	{
		TrendID:      "trend_005",
		TrendName:    "Athleisure Evolution",
		Description:  "Sporty meets street. Technical fabrics in everyday silhouettes.",
		Source:       "GQ",
		SourcesCount: 3,
		Category:     "casual",
		Season:       "Any",
		Keywords:     []string{"athleisure", "sporty", "jogger", "track", "hoodie", "sneaker", "athletic"},
		CreatedAt:    date(2025, 9, 1),
		ExpiresAt:    date(2027, 9, 1),
	},
	{
		TrendID:      "trend_006",
		TrendName:    "Sheer Confidence",
		Description:  "Translucent fabrics and mesh details add edge to evening wear.",
		Source:       "Elle",
		SourcesCount: 3,
		Category:     "party",
		Season:       "Summer",
		Keywords:     []string{"sheer", "mesh", "translucent", "evening", "bold", "daring"},
		CreatedAt:    date(2025, 11, 1),
		ExpiresAt:    date(2027, 6, 1),
	},
	{
		TrendID:      "trend_007",
		TrendName:    "Indie Sleaze Revival",
		Description:  "Early 2010s party aesthetic returns. Skinny jeans, band tees, leather jackets.",
		Source:       "Vogue",
		SourcesCount: 2,
		Category:     "party",
		Season:       "Any",
		Keywords:     []string{"indie", "sleaze", "skinny", "leather", "band", "rock", "edgy"},
		CreatedAt:    date(2025, 12, 10),
		ExpiresAt:    date(2027, 12, 1),
	},
	{
		TrendID:      "trend_008",
		TrendName:    "Corporate Core",
		Description:  "Workwear as statement. Sharp shirts, pleated trousers, polished loafers.",
		Source:       "GQ",
		SourcesCount: 3,
		Category:     "office",
		Season:       "Any",
		Keywords:     []string{"corporate", "office", "formal", "shirt", "trouser", "professional", "work"},
		CreatedAt:    date(2025, 10, 15),
		ExpiresAt:    date(2027, 10, 1),
	},
	// single source
	{
		TrendID:      "trend_009",
		TrendName:    "Boho Maximalism",
		Description:  "Layered prints, flowing silhouettes, and eclectic accessories.",
		Source:       "Elle",
		SourcesCount: 1,
		Category:     "casual",
		Season:       "Summer",
		Keywords:     []string{"boho", "bohemian", "print", "flow", "maxi", "layered", "eclectic"},
		CreatedAt:    date(2025, 8, 1),
		ExpiresAt:    date(2027, 8, 1),
	},
	{
		TrendID:      "trend_010",
		TrendName:    "Elevated Ethnic",
		Description:  "Traditional Indian silhouettes with modern cuts. Fusion kurtas and contemporary sarees.",
		Source:       "Vogue India",
		SourcesCount: 2,
		Category:     "ethnic",
		Season:       "Any",
		Keywords:     []string{"ethnic", "kurta", "saree", "traditional", "fusion", "indian", "wedding"},
		CreatedAt:    date(2025, 11, 20),
		ExpiresAt:    date(2027, 11, 1),
	},
	{
		TrendID:      "trend_011",
		TrendName:    "Minimalist Monochrome",
		Description:  "All-black or all-white outfits. Clean lines, zero embellishment.",
		Source:       "GQ",
		SourcesCount: 2,
		Category:     "any",
		Season:       "Any",
		Keywords:     []string{"minimalist", "monochrome", "black", "white", "clean", "simple"},
		CreatedAt:    date(2025, 12, 5),
		ExpiresAt:    date(2027, 12, 1),
	},
	{
		TrendID:      "trend_012",
		TrendName:    "Cottagecore Romance",
		Description:  "Pastoral prints, puff sleeves, and prairie dresses. Feminine and nostalgic.",
		Source:       "Elle",
		SourcesCount: 2,
		Category:     "casual",
		Season:       "Spring",
		Keywords:     []string{"cottage", "prairie", "puff", "floral", "romantic", "feminine", "dress"},
		CreatedAt:    date(2025, 9, 15),
		ExpiresAt:    date(2027, 5, 1),
	},
}
