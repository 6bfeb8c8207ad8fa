package scraper

import "github.com/Tanvi150423/voguefit/internal/model"

func item(id, title, price, brand, imageURL, productURL, platform string, comfort int) model.Product {
	return model.Product{
		ID:           id,
		Title:        title,
		Price:        price,
		Brand:        brand,
		ImageURL:     imageURL,
		ProductURL:   productURL,
		Platform:     platform,
		ComfortScore: comfort,
	}
}

// fallbackCatalog holds per-platform static product data served when live
// scraping is unavailable or comes back empty. Kept intentionally broad per
// platform so relevance filtering has something to work with.
var fallbackCatalog = map[string][]model.Product{
	"myntra": {
		item("m1", "Roadster White Cotton Shirt", "428", "Roadster", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/11896110/2020/6/13/255b6d0d-f8f9-42f2-bb7e-8fb1f08a4b3d1592039989996-Roadster-Men-Shirts-8561592039988127-1.jpg", "https://www.myntra.com/shirts/roadster/roadster-men-white--cotton-casual-shirt/11896110/buy", "myntra", 85),
		item("m2", "Anouk Printed Men Kurta", "793", "Anouk", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/2025/AUGUST/26/hirDZMlI_e3a6913e459247729315110f826a373e.jpg", "https://www.myntra.com/kurtas/anouk/anouk-men---kurtas/36622780/buy", "myntra", 92),
		item("m3", "HRX Training T-shirt", "349", "HRX", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/32989761/2025/5/23/113825b1-7cb5-4ffd-b40a-6ee8933f4eb21747991925496-HRX-by-Hrithik-Roshan-Men-Tshirts-4521747991924933-1.jpg", "https://www.myntra.com/tshirts/hrx+by+hrithik+roshan/hrx-by-hrithik-roshan-men-brand-logo-printed-rapid-dry-training-t-shirt/32989761/buy", "myntra", 95),
		item("m4", "Levis Tapered Fit Jeans", "1430", "Levis", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/2025/OCTOBER/10/A9D2xQqi_e3b0de0ec3ea4f56852fa9c90d6e2ff0.jpg", "https://www.myntra.com/jeans/levis/levis-men-tapered-fit-mid-rise-no-fade-stretchable-jeans/37015164/buy", "myntra", 78),
		item("m5", "Sassafras Floral Dress", "1103", "SASSAFRAS", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/21948040/2023/2/12/7ecce137-45f2-4d53-b2b3-fb59eda254871676149333530SASSAFRASOliveGreenFloralA-LineDress1.jpg", "https://www.myntra.com/dresses/sassafras/sassafras-floral-printed-square-neck-a-line-dress/21948040/buy", "myntra", 88),
		item("m6", "Allen Solly Slim Fit Blazer", "3999", "Allen Solly", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/17426680/2022/3/11/a1b2c3d4-e5f6-7890-abcd-1234567890ab1647007612345-Allen-Solly-Men-Navy-Blazer-1.jpg", "https://www.myntra.com/blazers/allen-solly/allen-solly-slim-fit-blazer/17426680/buy", "myntra", 75),
		item("m7", "Puma RS-X Running Shoes", "5999", "Puma", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/18594072/2022/7/19/a1b2c3d4-e5f6-7890-abcd-1234567890ab1658234567890-Puma-RSX-1.jpg", "https://www.myntra.com/sports-shoes/puma/puma-rs-x-running/18594072/buy", "myntra", 91),
		item("m8", "Libas Ethnic Anarkali Kurta Set", "1899", "Libas", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/25678945/2023/9/20/a1b2c3d4-e5f6-7890-abcd-1234567890ab-Libas-Anarkali-1.jpg", "https://www.myntra.com/kurta-sets/libas/libas-women-anarkali-kurta-set/25678945/buy", "myntra", 90),
		item("m9", "Mango Relaxed Fit Trousers", "2490", "Mango", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/22345678/2023/5/15/a1b2c3d4-e5f6-7890-abcd-1234567890ab-Mango-Trousers-1.jpg", "https://www.myntra.com/trousers/mango/mango-relaxed-fit-trousers/22345678/buy", "myntra", 82),
		item("m10", "W Women Palazzo Pants", "899", "W", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/19876543/2023/3/10/a1b2c3d4-e5f6-7890-abcd-1234567890ab-W-Palazzo-1.jpg", "https://www.myntra.com/palazzos/w/w-women-palazzo-pants/19876543/buy", "myntra", 94),
		item("m11", "Campus Casual Sneakers", "1299", "Campus", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/20123456/2023/4/12/a1b2c3d4-e5f6-7890-abcd-1234567890ab-Campus-Sneakers-1.jpg", "https://www.myntra.com/casual-shoes/campus/campus-sneakers/20123456/buy", "myntra", 86),
		item("m12", "FabIndia Cotton Saree", "2999", "FabIndia", "https://assets.myntassets.com/h_1440,q_100,w_1080/v1/assets/images/21234567/2023/6/18/a1b2c3d4-e5f6-7890-abcd-1234567890ab-FabIndia-Saree-1.jpg", "https://www.myntra.com/sarees/fabindia/fabindia-cotton-saree/21234567/buy", "myntra", 87),
	},
	"zara": {
		item("z1", "Satin Effect Shirt", "3990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/2142/240/400/2/w/1024/2142240400_6_1_1.jpg", "https://www.zara.com/in/en/satin-effect-shirt-p02142240.html", "zara", 82),
		item("z2", "Oversized Blazer", "7990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/2731/252/800/2/w/1024/2731252800_6_1_1.jpg", "https://www.zara.com/in/en/oversized-blazer-p02731252.html", "zara", 70),
		item("z3", "High-Waist Trousers", "2990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/7385/451/400/2/w/1024/7385451400_6_1_1.jpg", "https://www.zara.com/in/en/high-waisted-trousers-p07385451.html", "zara", 88),
		item("z4", "Minimalist Cotton T-shirt", "1290", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/1234/567/800/2/w/1024/1234567800_6_1_1.jpg", "https://www.zara.com/in/en/cotton-tshirt-p01234567.html", "zara", 90),
		item("z5", "Wide Leg Jeans", "3990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/5678/901/400/2/w/1024/5678901400_6_1_1.jpg", "https://www.zara.com/in/en/wide-leg-jeans-p05678901.html", "zara", 85),
		item("z6", "Flowy Midi Dress", "4990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/9012/345/600/2/w/1024/9012345600_6_1_1.jpg", "https://www.zara.com/in/en/flowy-midi-dress-p09012345.html", "zara", 86),
		item("z7", "Leather Loafers", "5990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/3456/789/100/2/w/1024/3456789100_6_1_1.jpg", "https://www.zara.com/in/en/leather-loafers-p03456789.html", "zara", 78),
		item("z8", "Knit Cardigan", "2990", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/7890/123/400/2/w/1024/7890123400_6_1_1.jpg", "https://www.zara.com/in/en/knit-cardigan-p07890123.html", "zara", 92),
		item("z9", "Structured Handbag", "3490", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/2345/678/900/2/w/1024/2345678900_6_1_1.jpg", "https://www.zara.com/in/en/structured-handbag-p02345678.html", "zara", 75),
		item("z10", "Linen Blend Shorts", "2290", "Zara", "https://static.zara.net/photos///2024/V/0/2/p/6789/012/300/2/w/1024/6789012300_6_1_1.jpg", "https://www.zara.com/in/en/linen-shorts-p06789012.html", "zara", 94),
	},
	"hm": {
		item("h1", "Linen Blend Shirt", "2299", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/8f/80/8f804990c746fd845f06a146747b293d0d829377.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.1120442001.html", "hm", 94),
		item("h2", "Relaxed Fit Hoodie", "1999", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/0a/8b/0a8b9f7c755ca7b69389274da589f2d8a0d283f2.jpg],origin[dam],category[],type[DESCRIPTIVESTILLLIFE],res[z],hmver[2]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.0970819001.html", "hm", 97),
		item("h3", "Slim Fit Chinos", "1499", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/1a/2b/1a2b3c4d5e6f7890abcdef1234567890.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.1234567890.html", "hm", 88),
		item("h4", "Cotton Jersey Dress", "999", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/2b/3c/2b3c4d5e6f7890abcdef1234567890ab.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.2345678901.html", "hm", 91),
		item("h5", "Denim Jacket", "2499", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/3c/4d/3c4d5e6f7890abcdef1234567890abcd.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.3456789012.html", "hm", 82),
		item("h6", "Wide Leg Trousers", "1799", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/4d/5e/4d5e6f7890abcdef1234567890abcdef.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.4567890123.html", "hm", 89),
		item("h7", "Knit Sweater", "1299", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/5e/6f/5e6f7890abcdef1234567890abcdef12.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.5678901234.html", "hm", 93),
		item("h8", "Canvas Sneakers", "1499", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/6f/78/6f7890abcdef1234567890abcdef1234.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.6789012345.html", "hm", 85),
		item("h9", "Satin Blouse", "1799", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/78/90/7890abcdef1234567890abcdef123456.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.7890123456.html", "hm", 84),
		item("h10", "Joggers", "1299", "H&M", "https://lp2.hm.com/hmgoepprod?set=source[/89/01/8901abcdef1234567890abcdef1234567.jpg],origin[dam],category[],type[LOOKBOOK],res[z],hmver[1]&call=url[file:/product/main]", "https://www2.hm.com/en_in/productpage.8901234567.html", "hm", 96),
	},
	"uniqlo": {
		item("u1", "Airism Cotton Tee", "990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/455359/item/ingoods_00_455359.jpg", "https://www.uniqlo.com/in/en/products/E455359-000", "uniqlo", 98),
		item("u2", "Pleated Wide Pants", "2990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/460311/item/ingoods_09_460311.jpg", "https://www.uniqlo.com/in/en/products/E460311-000", "uniqlo", 95),
		item("u3", "Blocktech Parka", "4990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/456087/item/ingoods_09_456087.jpg", "https://www.uniqlo.com/in/en/products/E456087-000", "uniqlo", 85),
		item("u4", "Ultra Light Down Jacket", "3990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/461234/item/ingoods_00_461234.jpg", "https://www.uniqlo.com/in/en/products/E461234-000", "uniqlo", 92),
		item("u5", "Heattech Extra Warm", "1490", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/462345/item/ingoods_00_462345.jpg", "https://www.uniqlo.com/in/en/products/E462345-000", "uniqlo", 97),
		item("u6", "Flannel Shirt", "1990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/463456/item/ingoods_00_463456.jpg", "https://www.uniqlo.com/in/en/products/E463456-000", "uniqlo", 90),
		item("u7", "Smart Ankle Pants", "2490", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/464567/item/ingoods_00_464567.jpg", "https://www.uniqlo.com/in/en/products/E464567-000", "uniqlo", 88),
		item("u8", "Supima Cotton Crew Neck", "1290", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/465678/item/ingoods_00_465678.jpg", "https://www.uniqlo.com/in/en/products/E465678-000", "uniqlo", 94),
		item("u9", "Stretch Slim Fit Jeans", "2990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/466789/item/ingoods_00_466789.jpg", "https://www.uniqlo.com/in/en/products/E466789-000", "uniqlo", 86),
		item("u10", "Linen Blend Shirt", "1990", "Uniqlo", "https://image.uniqlo.com/UQ/ST3/in/imagesgoods/467890/item/ingoods_00_467890.jpg", "https://www.uniqlo.com/in/en/products/E467890-000", "uniqlo", 93),
	},
	"amazon": {
		item("a1", "Allen Solly Men Polo", "799", "Allen Solly", "https://m.media-amazon.com/images/I/71eUwDk8z+L._AC_UL320_.jpg", "https://www.amazon.in/dp/B07J5D4L5P", "amazon", 90),
		item("a2", "Van Heusen Formal Shirt", "1299", "Van Heusen", "https://m.media-amazon.com/images/I/71F7X2a5c4L._AC_UL320_.jpg", "https://www.amazon.in/dp/B07K6J6K6K", "amazon", 85),
		item("a3", "US Polo Assn Jeans", "1599", "USPA", "https://m.media-amazon.com/images/I/81+Ki3Sj9AL._AC_UL320_.jpg", "https://www.amazon.in/dp/B07M7N7O7P", "amazon", 80),
		item("a4", "Puma Running Shoes", "2499", "Puma", "https://m.media-amazon.com/images/I/61b7b7k7b7L._AC_UL320_.jpg", "https://www.amazon.in/dp/B08J8K8L8M", "amazon", 88),
		item("a5", "Casio Vintage Watch", "3995", "Casio", "https://m.media-amazon.com/images/I/61d7d7k7d7L._AC_UL320_.jpg", "https://www.amazon.in/dp/B09K9L9M9N", "amazon", 70),
		item("a6", "Fastrack Wayfarers", "899", "Fastrack", "https://m.media-amazon.com/images/I/51e7e7k7e7L._AC_UL320_.jpg", "https://www.amazon.in/dp/B00L0M0N0O", "amazon", 75),
		item("a7", "Peter England Blazer", "3499", "Peter England", "https://m.media-amazon.com/images/I/71a1b1c1d1L._AC_UL320_.jpg", "https://www.amazon.in/dp/B01A1B1C1D", "amazon", 78),
		item("a8", "Adidas Track Pants", "1999", "Adidas", "https://m.media-amazon.com/images/I/61a2b2c2d2L._AC_UL320_.jpg", "https://www.amazon.in/dp/B02A2B2C2D", "amazon", 92),
		item("a9", "Woodland Leather Boots", "4995", "Woodland", "https://m.media-amazon.com/images/I/71a3b3c3d3L._AC_UL320_.jpg", "https://www.amazon.in/dp/B03A3B3C3D", "amazon", 82),
		item("a10", "Lee Cooper Wallet", "699", "Lee Cooper", "https://m.media-amazon.com/images/I/61a4b4c4d4L._AC_UL320_.jpg", "https://www.amazon.in/dp/B04A4B4C4D", "amazon", 76),
		item("a11", "Tommy Hilfiger Polo", "2499", "Tommy Hilfiger", "https://m.media-amazon.com/images/I/71a5b5c5d5L._AC_UL320_.jpg", "https://www.amazon.in/dp/B05A5B5C5D", "amazon", 87),
		item("a12", "Biba Printed Kurta", "1199", "Biba", "https://m.media-amazon.com/images/I/71a6b6c6d6L._AC_UL320_.jpg", "https://www.amazon.in/dp/B06A6B6C6D", "amazon", 91),
	},
	"flipkart": {
		item("f1", "Highlander Men Slim Fit Jeans", "699", "Highlander", "https://rukminim2.flixcart.com/image/832/832/kfoapow0-0/jean/1/u/r/30-hljn000958-highlander-original-imafw2g5zyz5zyz5.jpeg", "https://www.flipkart.com/highlander-slim-men-blue-jeans/p/itm123456789", "flipkart", 85),
		item("f2", "Vera Moda Floral Dress", "1499", "Vero Moda", "https://rukminim2.flixcart.com/image/832/832/xif0q/dress/1/2/3/s-123456-vero-moda-original-imagnz7z7z7z7z7z.jpeg", "https://www.flipkart.com/vero-moda-floral-print-a-line-dress/p/itm987654321", "flipkart", 92),
		item("f3", "Nike Revolution 5", "3499", "Nike", "https://rukminim2.flixcart.com/image/832/832/k1fbmvk0/shoe/1/2/3/12-bq3204-002-nike-black-white-anthracite-original-imafhz7z7z7z7z7z.jpeg", "https://www.flipkart.com/nike-revolution-5-running-shoes/p/itm567890123", "flipkart", 89),
		item("f4", "Metronaut T-shirt", "299", "Metronaut", "https://rukminim2.flixcart.com/image/832/832/k0lbdzk0/t-shirt/1/2/3/m-mt-123456-metronaut-original-imafk7z7z7z7z7z7.jpeg", "https://www.flipkart.com/metronaut-solid-men-round-neck-black-t-shirt/p/itm345678901", "flipkart", 80),
		item("f5", "Lavie Handbag", "1999", "Lavie", "https://rukminim2.flixcart.com/image/832/832/k6fd47k0/hand-messenger-bag/1/2/3/123456-lavie-original-imafp7z7z7z7z7z7.jpeg", "https://www.flipkart.com/lavie-women-hand-bag/p/itm234567890", "flipkart", 78),
		item("f6", "Sparx Running Shoes", "999", "Sparx", "https://rukminim2.flixcart.com/image/832/832/xif0q/shoe/1/2/3/10-sparx-running-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/sparx-running-shoes/p/itm112233445", "flipkart", 84),
		item("f7", "Pepe Jeans Casual Shirt", "1299", "Pepe Jeans", "https://rukminim2.flixcart.com/image/832/832/xif0q/shirt/1/2/3/l-pepe-casual-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/pepe-jeans-casual-shirt/p/itm223344556", "flipkart", 86),
		item("f8", "W Palazzo Pants", "899", "W", "https://rukminim2.flixcart.com/image/832/832/xif0q/trouser/1/2/3/30-w-palazzo-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/w-palazzo-pants/p/itm334455667", "flipkart", 93),
		item("f9", "Aurelia Ethnic Kurta", "799", "Aurelia", "https://rukminim2.flixcart.com/image/832/832/xif0q/kurta/1/2/3/m-aurelia-kurta-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/aurelia-ethnic-kurta/p/itm445566778", "flipkart", 90),
		item("f10", "Red Tape Formal Shoes", "1599", "Red Tape", "https://rukminim2.flixcart.com/image/832/832/xif0q/shoe/1/2/3/9-redtape-formal-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/red-tape-formal-shoes/p/itm556677889", "flipkart", 79),
		item("f11", "Flying Machine Jacket", "1999", "Flying Machine", "https://rukminim2.flixcart.com/image/832/832/xif0q/jacket/1/2/3/l-fm-jacket-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/flying-machine-jacket/p/itm667788990", "flipkart", 83),
		item("f12", "Anubhutee Cotton Saree", "1299", "Anubhutee", "https://rukminim2.flixcart.com/image/832/832/xif0q/saree/1/2/3/free-anubhutee-saree-original-imag7z7z7z7z7z7.jpeg", "https://www.flipkart.com/anubhutee-cotton-saree/p/itm778899001", "flipkart", 88),
	},
	"jio": {
		item("j1", "DNMX Men Check Shirt", "599", "DNMX", "https://assets.ajio.com/medias/sys_master/root/20230623/1234/5678901234567890.jpg", "https://www.jiomart.com/p/fashion/dnmx-men-checked-shirt/581234567", "jio", 88),
		item("j2", "Teamspirit Track Pants", "499", "Teamspirit", "https://assets.ajio.com/medias/sys_master/root/20230623/2345/6789012345678901.jpg", "https://www.jiomart.com/p/fashion/teamspirit-men-track-pants/582345678", "jio", 92),
		item("j3", "Avaasa Ethnic Kurta", "799", "Avaasa", "https://assets.ajio.com/medias/sys_master/root/20230623/3456/7890123456789012.jpg", "https://www.jiomart.com/p/fashion/avaasa-women-printed-kurta/583456789", "jio", 95),
		item("j4", "Netplay Formal Shirt", "899", "Netplay", "https://assets.ajio.com/medias/sys_master/root/20230623/4567/8901234567890123.jpg", "https://www.jiomart.com/p/fashion/netplay-men-formal-shirt/584567890", "jio", 85),
		item("j5", "Kappa Sports Shoes", "1299", "Kappa", "https://assets.ajio.com/medias/sys_master/root/20230623/5678/9012345678901234.jpg", "https://www.jiomart.com/p/fashion/kappa-sports-shoes/585678901", "jio", 87),
		item("j6", "Trends Casual Dress", "999", "Trends", "https://assets.ajio.com/medias/sys_master/root/20230623/6789/0123456789012345.jpg", "https://www.jiomart.com/p/fashion/trends-casual-dress/586789012", "jio", 89),
		item("j7", "Fig Denim Jeans", "799", "Fig", "https://assets.ajio.com/medias/sys_master/root/20230623/7890/1234567890123456.jpg", "https://www.jiomart.com/p/fashion/fig-denim-jeans/587890123", "jio", 83),
		item("j8", "Perform Active T-shirt", "399", "Perform", "https://assets.ajio.com/medias/sys_master/root/20230623/8901/2345678901234567.jpg", "https://www.jiomart.com/p/fashion/perform-active-tshirt/588901234", "jio", 91),
		item("j9", "Fusion Blazer", "1599", "Fusion", "https://assets.ajio.com/medias/sys_master/root/20230623/9012/3456789012345678.jpg", "https://www.jiomart.com/p/fashion/fusion-blazer/589012345", "jio", 77),
		item("j10", "Ajile Joggers", "599", "Ajile", "https://assets.ajio.com/medias/sys_master/root/20230623/0123/4567890123456789.jpg", "https://www.jiomart.com/p/fashion/ajile-joggers/580123456", "jio", 94),
	},
}

// FallbackCatalog returns the static catalog for a platform, or nil if none
func FallbackCatalog(platform string) []model.Product {
	return fallbackCatalog[platform]
}
