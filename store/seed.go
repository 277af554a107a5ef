package store

import "github.com/luxefurnish/furnishbackend/models"

func boolPtr(b bool) *bool { return &b }

// SampleProducts is the catalog a fresh store is seeded with.
var SampleProducts = []models.Product{
	{
		Id:          "1",
		Name:        "Executive Office Desk",
		Category:    "office_desk",
		Type:        "office",
		Price:       2500,
		Description: "Premium executive desk with built-in storage and cable management.",
		Dimensions:  "180cm x 80cm x 75cm",
		Materials:   "Solid oak wood, steel frame",
		Colors:      []string{"Oak", "Walnut", "Black"},
		ImageUrl:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    true,
		CreatedDate: "2024-01-15T00:00:00.000Z",
	},
	{
		Id:          "2",
		Name:        "Ergonomic Office Chair",
		Category:    "office_chair",
		Type:        "office",
		Price:       850,
		Description: "Comfortable ergonomic chair with lumbar support and adjustable height.",
		Dimensions:  "65cm x 65cm x 120cm",
		Materials:   "Mesh back, leather seat, aluminum base",
		Colors:      []string{"Black", "Gray", "Blue"},
		ImageUrl:    "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    true,
		CreatedDate: "2024-01-20T00:00:00.000Z",
	},
	{
		Id:          "3",
		Name:        "Modern Conference Table",
		Category:    "conference_table",
		Type:        "office",
		Price:       4500,
		Description: "Large conference table perfect for boardrooms and meeting spaces.",
		Dimensions:  "300cm x 120cm x 75cm",
		Materials:   "Glass top, steel legs",
		Colors:      []string{"Clear Glass", "Tinted Glass"},
		ImageUrl:    "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    true,
		CreatedDate: "2024-02-01T00:00:00.000Z",
	},
	{
		Id:          "4",
		Name:        "Storage Cabinet",
		Category:    "storage",
		Type:        "office",
		Price:       1200,
		Description: "Spacious filing cabinet with multiple drawers and lock mechanism.",
		Dimensions:  "90cm x 45cm x 120cm",
		Materials:   "Steel construction",
		Colors:      []string{"White", "Black", "Gray"},
		ImageUrl:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    false,
		CreatedDate: "2024-02-10T00:00:00.000Z",
	},
	{
		Id:          "5",
		Name:        "Luxury Sofa Set",
		Category:    "home_sofa",
		Type:        "home",
		Price:       5500,
		Description: "Elegant 3-seater sofa with matching armchairs, perfect for living rooms.",
		Dimensions:  "240cm x 95cm x 85cm",
		Materials:   "Premium fabric, hardwood frame",
		Colors:      []string{"Beige", "Gray", "Navy"},
		ImageUrl:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    true,
		CreatedDate: "2024-02-15T00:00:00.000Z",
	},
	{
		Id:          "6",
		Name:        "Dining Table Set",
		Category:    "home_table",
		Type:        "home",
		Price:       3200,
		Description: "Beautiful dining table with 6 matching chairs.",
		Dimensions:  "200cm x 100cm x 75cm",
		Materials:   "Solid wood, upholstered seats",
		Colors:      []string{"Oak", "Walnut"},
		ImageUrl:    "https://images.unsplash.com/photo-1581539250439-c96689b516dd?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    true,
		CreatedDate: "2024-02-20T00:00:00.000Z",
	},
	{
		Id:          "7",
		Name:        "Comfortable Armchair",
		Category:    "home_chair",
		Type:        "home",
		Price:       950,
		Description: "Plush armchair with ottoman, ideal for reading nooks.",
		Dimensions:  "85cm x 90cm x 100cm",
		Materials:   "Leather, foam padding",
		Colors:      []string{"Brown", "Black", "Cream"},
		ImageUrl:    "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    false,
		CreatedDate: "2024-03-01T00:00:00.000Z",
	},
	{
		Id:          "8",
		Name:        "King Size Bed Frame",
		Category:    "home_bed",
		Type:        "home",
		Price:       2800,
		Description: "Elegant king-size bed frame with headboard and storage drawers.",
		Dimensions:  "200cm x 200cm x 110cm",
		Materials:   "Solid wood, fabric headboard",
		Colors:      []string{"Oak", "Walnut", "White"},
		ImageUrl:    "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    false,
		CreatedDate: "2024-03-05T00:00:00.000Z",
	},
	{
		Id:          "9",
		Name:        "Desk Lamp",
		Category:    "accessories",
		Type:        "office",
		Price:       150,
		Description: "Modern LED desk lamp with adjustable brightness and color temperature.",
		Dimensions:  "35cm x 20cm x 45cm",
		Materials:   "Aluminum, LED",
		Colors:      []string{"Silver", "Black", "White"},
		ImageUrl:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    false,
		CreatedDate: "2024-03-10T00:00:00.000Z",
	},
	{
		Id:          "10",
		Name:        "Standing Desk",
		Category:    "office_desk",
		Type:        "office",
		Price:       1800,
		Description: "Electric height-adjustable standing desk for modern workspaces.",
		Dimensions:  "160cm x 80cm x 75-125cm",
		Materials:   "Bamboo top, steel frame",
		Colors:      []string{"Natural Bamboo", "Dark Bamboo"},
		ImageUrl:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&q=80",
		InStock:     boolPtr(true),
		Featured:    false,
		CreatedDate: "2024-03-15T00:00:00.000Z",
	},
}

// Catalog photos were swapped out at some point; stores seeded before the
// swap still carry the old URLs and get patched on every open.
var legacyImageFixups = []struct {
	id      string
	name    string
	oldUrls []string
	newUrl  string
}{
	{
		id:   "2",
		name: "Ergonomic Office Chair",
		oldUrls: []string{
			"https://images.unsplash.com/photo-1506439773649-6d5f9a3706f1?w=800&q=80",
			"https://images.unsplash.com/photo-1592128546260-5e1d8280b08b?w=800&q=80",
		},
		newUrl: "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=800&q=80",
	},
	{
		id:   "8",
		name: "King Size Bed Frame",
		oldUrls: []string{
			"https://images.unsplash.com/photo-1631889992176-7863bd170c0c?w=800&q=80",
		},
		newUrl: "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&q=80",
	},
}

// applyImageFixups rewrites outdated product image URLs in place and reports
// whether anything changed.
func applyImageFixups(products []models.Product) bool {
	changed := false
	for _, fix := range legacyImageFixups {
		for i := range products {
			if products[i].Id != fix.id || products[i].Name != fix.name {
				continue
			}
			for _, old := range fix.oldUrls {
				if products[i].ImageUrl == old {
					products[i].ImageUrl = fix.newUrl
					changed = true
				}
			}
		}
	}
	return changed
}
