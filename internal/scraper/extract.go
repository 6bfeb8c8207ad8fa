package scraper

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Tanvi150423/voguefit/internal/model"
	"github.com/Tanvi150423/voguefit/internal/utils"
)

const maxExtractedProducts = 20

var nonDigits = regexp.MustCompile(`[^\d]`)

func digitsOnly(s string) string {
	out := nonDigits.ReplaceAllString(s, "")
	if out == "" {
		return "0"
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// productsFromExtractRules converts the scraping API's extract-rules output
// into products. Entries with neither a usable title nor an image are
// dropped.
func productsFromExtractRules(extracted []extractedProduct, platform string) []model.Product {
	products := make([]model.Product, 0, len(extracted))
	for _, p := range extracted {
		title := firstNonEmpty(p.Name, p.Title)
		imageURL := firstNonEmpty(p.Image, p.ImageURL)
		if title == "" && imageURL == "" {
			continue
		}
		if title == "" {
			title = "Unknown Product"
		}
		products = append(products, model.Product{
			ID:         fmt.Sprintf("%s_%d", platform, len(products)),
			Title:      title,
			Price:      digitsOnly(p.Price),
			Brand:      firstNonEmpty(p.Brand, displayName(platform)),
			ImageURL:   imageURL,
			ProductURL: firstNonEmpty(p.URL, p.ProductURL),
			Platform:   platform,
		})
	}
	return products
}

// looseProduct covers the product field spellings seen across platform APIs
// and embedded page state
type looseProduct struct {
	ProductName        string `json:"productName"`
	Name               string `json:"name"`
	ProductDisplayName string `json:"productDisplayName"`
	Title              string `json:"title"`

	Price           json.Number `json:"price"`
	MRP             json.Number `json:"mrp"`
	DiscountedPrice json.Number `json:"discountedPrice"`
	SalePrice       json.Number `json:"salePrice"`

	Brand     string `json:"brand"`
	BrandName string `json:"brandName"`

	SearchImage  string `json:"searchImage"`
	Image        string `json:"image"`
	DefaultImage string `json:"defaultImage"`
	Images       []struct {
		Src string `json:"src"`
	} `json:"images"`

	LandingPageURL string `json:"landingPageUrl"`
	ProductURL     string `json:"productUrl"`
	URL            string `json:"url"`
	Link           string `json:"link"`
}

func (lp looseProduct) toProduct(platform string, idx int) (model.Product, bool) {
	title := firstNonEmpty(lp.ProductName, lp.Name, lp.ProductDisplayName, lp.Title)
	if title == "" {
		return model.Product{}, false
	}

	imageURL := firstNonEmpty(lp.SearchImage, lp.Image, lp.DefaultImage)
	if imageURL == "" && len(lp.Images) > 0 {
		imageURL = lp.Images[0].Src
	}

	return model.Product{
		ID:         fmt.Sprintf("%s_%d", platform, idx),
		Title:      title,
		Price:      digitsOnly(firstNonEmpty(lp.Price.String(), lp.MRP.String(), lp.DiscountedPrice.String(), lp.SalePrice.String())),
		Brand:      firstNonEmpty(lp.Brand, lp.BrandName, displayName(platform)),
		ImageURL:   imageURL,
		ProductURL: firstNonEmpty(lp.LandingPageURL, lp.ProductURL, lp.URL, lp.Link),
		Platform:   platform,
	}, true
}

// productContainer lists the places platform APIs hide their product arrays
type productContainer struct {
	Products []looseProduct `json:"products"`
	Styles   []looseProduct `json:"styles"`
	Data     *struct {
		Results *struct {
			Products []looseProduct `json:"products"`
		} `json:"results"`
	} `json:"data"`
	SearchData *struct {
		Results *struct {
			Products []looseProduct `json:"products"`
		} `json:"results"`
	} `json:"searchData"`
	Response *struct {
		Results []looseProduct `json:"results"`
	} `json:"response"`
	Props *struct {
		PageProps *struct {
			Products []looseProduct `json:"products"`
		} `json:"pageProps"`
	} `json:"props"`
	InitialState *struct {
		SearchResults *struct {
			Products []looseProduct `json:"products"`
		} `json:"searchResults"`
	} `json:"initialState"`
}

func (pc productContainer) candidates() []looseProduct {
	switch {
	case len(pc.Products) > 0:
		return pc.Products
	case pc.SearchData != nil && pc.SearchData.Results != nil && len(pc.SearchData.Results.Products) > 0:
		return pc.SearchData.Results.Products
	case pc.Data != nil && pc.Data.Results != nil && len(pc.Data.Results.Products) > 0:
		return pc.Data.Results.Products
	case len(pc.Styles) > 0:
		return pc.Styles
	case pc.Response != nil && len(pc.Response.Results) > 0:
		return pc.Response.Results
	case pc.Props != nil && pc.Props.PageProps != nil && len(pc.Props.PageProps.Products) > 0:
		return pc.Props.PageProps.Products
	case pc.InitialState != nil && pc.InitialState.SearchResults != nil:
		return pc.InitialState.SearchResults.Products
	}
	return nil
}

func productsFromContainer(raw []byte, platform string) []model.Product {
	var container productContainer
	if err := json.Unmarshal(raw, &container); err != nil {
		return nil
	}

	loose := container.candidates()
	if len(loose) > maxExtractedProducts {
		loose = loose[:maxExtractedProducts]
	}

	products := make([]model.Product, 0, len(loose))
	for _, lp := range loose {
		if p, ok := lp.toProduct(platform, len(products)); ok {
			products = append(products, p)
		}
	}
	return products
}

// productsFromXHR scans captured XHR bodies for product arrays. Many modern
// storefronts render an empty shell and load products through these calls.
func productsFromXHR(entries []xhrEntry, platform string) []model.Product {
	for _, entry := range entries {
		raw := []byte(entry.Body)
		if len(raw) == 0 {
			continue
		}

		// bodies arrive either as embedded JSON or as a JSON-encoded string
		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			raw = []byte(asString)
		}
		if len(raw) < 100 {
			continue
		}

		if products := productsFromContainer(raw, platform); len(products) > 0 {
			return products
		}
	}
	return nil
}

// jsonLDProduct is the schema.org Product shape found in ld+json scripts
type jsonLDProduct struct {
	Type   string          `json:"@type"`
	Name   string          `json:"name"`
	URL    string          `json:"url"`
	ID     string          `json:"@id"`
	Image  json.RawMessage `json:"image"`
	Brand  json.RawMessage `json:"brand"`
	Offers *struct {
		Price    json.Number `json:"price"`
		LowPrice json.Number `json:"lowPrice"`
	} `json:"offers"`
	ItemListElement []struct {
		Item *jsonLDProduct `json:"item"`
	} `json:"itemListElement"`
}

func (p jsonLDProduct) imageURL() string {
	if len(p.Image) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(p.Image, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(p.Image, &many); err == nil && len(many) > 0 {
		return many[0]
	}
	return ""
}

// brandName accepts both brand shapes schema.org allows:
// "brand": "Zara" and "brand": {"name": "Zara"}
func (p jsonLDProduct) brandName() string {
	if len(p.Brand) == 0 {
		return ""
	}
	var plain string
	if err := json.Unmarshal(p.Brand, &plain); err == nil {
		return plain
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(p.Brand, &obj); err == nil {
		return obj.Name
	}
	return ""
}

func appendJSONLDProduct(products []model.Product, p jsonLDProduct, platform string) []model.Product {
	if p.Name == "" || p.Offers == nil {
		return products
	}
	return append(products, model.Product{
		ID:         fmt.Sprintf("%s_%d", platform, len(products)),
		Title:      p.Name,
		Price:      digitsOnly(firstNonEmpty(p.Offers.Price.String(), p.Offers.LowPrice.String())),
		Brand:      jsonLDBrand(p, platform),
		ImageURL:   p.imageURL(),
		ProductURL: firstNonEmpty(p.URL, p.ID),
		Platform:   platform,
	})
}

func jsonLDBrand(p jsonLDProduct, platform string) string {
	if name := p.brandName(); name != "" {
		return name
	}
	return displayName(platform)
}

var preloadedStatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)window\.__PRELOADED_STATE__\s*=\s*(\{.+?\});?\s*</script`),
	regexp.MustCompile(`(?s)window\.__myx\s*=\s*(\{.+?\});?\s*</script`),
	regexp.MustCompile(`(?s)__NEXT_DATA__[^>]*>([^<]+)<`),
}

var (
	ogTitlePattern = regexp.MustCompile(`<meta property="og:title" content="([^"]+)"`)
	ogImagePattern = regexp.MustCompile(`<meta property="og:image" content="([^"]+)"`)
	ogURLPattern   = regexp.MustCompile(`<meta property="og:url" content="([^"]+)"`)
	pricePattern   = regexp.MustCompile(`(?:₹|Rs\.?)\s*([\d,]+)`)
)

// productsFromHTML is the last extraction stage: structured data embedded in
// the page. Tries JSON-LD scripts, then preloaded-state blobs, then og meta
// tags.
func productsFromHTML(pageHTML, platform string) []model.Product {
	if pageHTML == "" {
		return nil
	}

	if products := productsFromJSONLD(pageHTML, platform); len(products) > 0 {
		return products
	}

	for _, pattern := range preloadedStatePatterns {
		match := pattern.FindStringSubmatch(pageHTML)
		if match == nil {
			continue
		}
		state := strings.ReplaceAll(match[1], `\"`, `"`)
		state = strings.ReplaceAll(state, `\n`, "")
		if products := productsFromContainer([]byte(state), platform); len(products) > 0 {
			return products
		}
	}

	// og meta fallback yields at most one product, better than nothing on
	// detail pages
	titleMatch := ogTitlePattern.FindStringSubmatch(pageHTML)
	imageMatch := ogImagePattern.FindStringSubmatch(pageHTML)
	if titleMatch != nil && imageMatch != nil {
		price := "0"
		if m := pricePattern.FindStringSubmatch(pageHTML); m != nil {
			price = digitsOnly(m[1])
		}
		productURL := ""
		if m := ogURLPattern.FindStringSubmatch(pageHTML); m != nil {
			productURL = m[1]
		}
		return []model.Product{{
			ID:         platform + "_meta",
			Title:      titleMatch[1],
			Price:      price,
			Brand:      displayName(platform),
			ImageURL:   imageMatch[1],
			ProductURL: productURL,
			Platform:   platform,
		}}
	}

	return nil
}

// productsFromJSONLD walks the document for ld+json scripts describing
// Product or ItemList entries
func productsFromJSONLD(pageHTML, platform string) []model.Product {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil
	}

	var products []model.Product
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" && scriptType(n) == "application/ld+json" {
			if n.FirstChild != nil {
				products = append(products, parseJSONLD(n.FirstChild.Data, platform)...)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return products
}

func scriptType(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "type" {
			return attr.Val
		}
	}
	return ""
}

func parseJSONLD(raw, platform string) []model.Product {
	// some pages pack several JSON documents into one script tag
	var products []model.Product
	for _, snippet := range utils.ExtractJSONSnippets(raw) {
		var ld jsonLDProduct
		if err := json.Unmarshal([]byte(snippet), &ld); err != nil {
			continue
		}
		switch ld.Type {
		case "Product":
			products = appendJSONLDProduct(products, ld, platform)
		case "ItemList":
			for _, el := range ld.ItemListElement {
				if el.Item != nil {
					products = appendJSONLDProduct(products, *el.Item, platform)
				}
			}
		}
	}
	return products
}
