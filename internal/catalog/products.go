package catalog

// defaultEntries is the storefront's product table. Edit here to change the
// assortment; the catalog is rebuilt from it on every start.
var defaultEntries = []Entry{
	{
		ID:          1,
		Name:        "Silver Needle White Tea",
		Price:       "49.99",
		Description: "Hand-picked spring buds with a soft, honeyed finish. 50g loose leaf.",
		Category:    "teas",
		BestSeller:  true,
		Image:       "https://cdn.example.com/products/silver-needle.jpg",
	},
	{
		ID:          2,
		Name:        "Jasmine Dragon Pearls",
		Price:       "29.99",
		Description: "Green tea hand-rolled into pearls and scented with fresh jasmine. 100g.",
		Category:    "teas",
		BestSeller:  true,
		Image:       "https://cdn.example.com/products/jasmine-pearls.jpg",
	},
	{
		ID:          3,
		Name:        "Aged Pu-erh Brick",
		Price:       "39.99",
		Description: "Seven-year shou pu-erh, earthy and smooth. 250g pressed brick.",
		Category:    "teas",
		Image:       "https://cdn.example.com/products/puerh-brick.jpg",
	},
	{
		ID:          4,
		Name:        "Matcha Starter Set",
		Price:       "59.99",
		Description: "Ceremonial-grade matcha with bamboo whisk, scoop and bowl.",
		Category:    "sets",
		Image:       "https://cdn.example.com/products/matcha-set.jpg",
	},
	{
		ID:          5,
		Name:        "Cast Iron Teapot",
		Price:       "74.99",
		Description: "Japanese-style tetsubin with stainless infuser, 0.8l.",
		Category:    "accessories",
		BestSeller:  true,
		Image:       "https://cdn.example.com/products/cast-iron-teapot.jpg",
	},
	{
		ID:          6,
		Name:        "Ceramic Tasting Cups",
		Price:       "24.99",
		Description: "Set of four handmade 80ml cups, speckled glaze.",
		Category:    "accessories",
		Image:       "https://cdn.example.com/products/tasting-cups.jpg",
	},
	{
		ID:          7,
		Name:        "Sampler Gift Box",
		Price:       "34.99",
		Description: "Eight 10g pouches across our core range, gift wrapped.",
		Category:    "sets",
		Image:       "https://cdn.example.com/products/sampler-box.jpg",
	},
}

// Default builds the catalog from the built-in product table.
func Default() (*Catalog, error) {
	return New(defaultEntries)
}
