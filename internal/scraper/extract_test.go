package scraper

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"₹1,299", "1299"},
		{"Rs. 450", "450"},
		{"2999", "2999"},
		{"", "0"},
		{"free", "0"},
	}
	for _, tt := range tests {
		if got := digitsOnly(tt.in); got != tt.want {
			t.Errorf("digitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProductsFromExtractRules(t *testing.T) {
	extracted := []extractedProduct{
		{Name: "White Shirt", Price: "₹1,299", Brand: "Roadster", Image: "img1", URL: "u1"},
		{}, // neither title nor image, dropped
		{Image: "img2", Price: "499"}, // image only, placeholder title
	}

	got := productsFromExtractRules(extracted, "myntra")
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].Title != "White Shirt" || got[0].Price != "1299" || got[0].Brand != "Roadster" {
		t.Errorf("product[0] = %+v", got[0])
	}
	if got[0].ID != "myntra_0" || got[0].Platform != "myntra" {
		t.Errorf("product[0] identity = %s/%s", got[0].ID, got[0].Platform)
	}
	if got[1].Title != "Unknown Product" {
		t.Errorf("product[1].Title = %q", got[1].Title)
	}
}

func TestProductsFromExtractRules_BrandDefaultsToPlatform(t *testing.T) {
	got := productsFromExtractRules([]extractedProduct{{Name: "Linen Shirt"}}, "hm")
	if len(got) != 1 || got[0].Brand != "H&M" {
		t.Fatalf("got %+v, want the platform display name as brand", got)
	}
}

func TestProductsFromXHR(t *testing.T) {
	body := `{"products": [
		{"productName": "Anouk Printed Kurta", "price": 793, "brand": "Anouk",
		 "searchImage": "https://example.com/kurta.jpg",
		 "landingPageUrl": "kurtas/anouk/36622780/buy"}
	]}`

	got := productsFromXHR([]xhrEntry{{URL: "https://api.example.com/search", Body: json.RawMessage(body)}}, "myntra")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	if got[0].Title != "Anouk Printed Kurta" || got[0].Price != "793" {
		t.Errorf("product = %+v", got[0])
	}
}

func TestProductsFromXHR_StringEncodedBody(t *testing.T) {
	inner := `{"data": {"results": {"products": [
		{"name": "Oversized Blazer", "price": "7990", "image": "https://example.com/blazer.jpg"}
	]}}}`
	encoded, err := json.Marshal(inner)
	if err != nil {
		t.Fatal(err)
	}

	got := productsFromXHR([]xhrEntry{{Body: json.RawMessage(encoded)}}, "zara")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	if got[0].Title != "Oversized Blazer" || got[0].Price != "7990" {
		t.Errorf("product = %+v", got[0])
	}
}

func TestProductsFromXHR_SkipsTinyBodies(t *testing.T) {
	got := productsFromXHR([]xhrEntry{{Body: json.RawMessage(`{"ok": true}`)}}, "zara")
	if len(got) != 0 {
		t.Errorf("got %d products from a tiny body", len(got))
	}
}

func TestProductsFromContainer_CapsAtTwenty(t *testing.T) {
	var items []string
	for i := 0; i < 30; i++ {
		items = append(items, fmt.Sprintf(`{"name": "Product %d", "price": 100}`, i))
	}
	raw := `{"products": [` + strings.Join(items, ",") + `]}`

	got := productsFromContainer([]byte(raw), "myntra")
	if len(got) != 20 {
		t.Errorf("got %d products, want the 20-product cap", len(got))
	}
}

func TestProductsFromHTML_JSONLD(t *testing.T) {
	page := `<html><head>
		<script type="application/ld+json">
		{"@type": "Product", "name": "Satin Effect Shirt",
		 "image": "https://example.com/shirt.jpg",
		 "url": "https://example.com/p/1",
		 "brand": {"name": "Zara"},
		 "offers": {"price": "3990"}}
		</script>
	</head><body></body></html>`

	got := productsFromHTML(page, "zara")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	p := got[0]
	if p.Title != "Satin Effect Shirt" || p.Price != "3990" || p.Brand != "Zara" {
		t.Errorf("product = %+v", p)
	}
	if p.ImageURL != "https://example.com/shirt.jpg" {
		t.Errorf("image = %q", p.ImageURL)
	}
}

func TestProductsFromHTML_JSONLDStringBrand(t *testing.T) {
	// schema.org allows "brand" as a plain string, not just an object
	page := `<html><head><script type="application/ld+json">
		{"@type": "Product", "name": "Ribbed Knit Top",
		 "brand": "Zara",
		 "offers": {"price": "2290"}}
	</script></head></html>`

	got := productsFromHTML(page, "zara")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	if got[0].Brand != "Zara" {
		t.Errorf("brand = %q, want Zara", got[0].Brand)
	}
}

func TestProductsFromHTML_JSONLDMissingBrand(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
		{"@type": "Product", "name": "Slim Fit Chinos", "offers": {"price": "1499"}}
	</script></head></html>`

	got := productsFromHTML(page, "hm")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	if got[0].Brand != "H&M" {
		t.Errorf("brand = %q, want the platform display name", got[0].Brand)
	}
}

func TestProductsFromHTML_ItemList(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
		{"@type": "ItemList", "itemListElement": [
			{"item": {"@type": "Product", "name": "Shirt A", "offers": {"price": 999}}},
			{"item": {"@type": "Product", "name": "Shirt B", "offers": {"lowPrice": 1299}}}
		]}
	</script></head></html>`

	got := productsFromHTML(page, "hm")
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[1].Price != "1299" {
		t.Errorf("lowPrice not used: %+v", got[1])
	}
}

func TestProductsFromHTML_PreloadedState(t *testing.T) {
	page := `<html><body><script>window.__myx = {"searchData": {"results": {"products": [
		{"productName": "HRX Training T-shirt", "price": 349, "searchImage": "img"}
	]}}};</script></body></html>`

	got := productsFromHTML(page, "myntra")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	if got[0].Title != "HRX Training T-shirt" {
		t.Errorf("product = %+v", got[0])
	}
}

func TestProductsFromHTML_OGMetaFallback(t *testing.T) {
	page := `<html><head>
		<meta property="og:title" content="Floral Midi Dress">
		<meta property="og:image" content="https://example.com/dress.jpg">
		<meta property="og:url" content="https://example.com/dress">
	</head><body>Price: ₹ 2,490 only</body></html>`

	got := productsFromHTML(page, "zara")
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	p := got[0]
	if p.ID != "zara_meta" || p.Title != "Floral Midi Dress" || p.Price != "2490" {
		t.Errorf("product = %+v", p)
	}
}

func TestProductsFromHTML_Empty(t *testing.T) {
	if got := productsFromHTML("", "zara"); got != nil {
		t.Errorf("got %v for empty page", got)
	}
	if got := productsFromHTML("<html><body>nothing here</body></html>", "zara"); len(got) != 0 {
		t.Errorf("got %d products from a bare page", len(got))
	}
}
