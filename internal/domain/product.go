package domain

// Product is a catalog entry. Catalog data is fixed at process start and
// never mutated afterwards.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	BestSeller  bool   `json:"bestSeller,omitempty"`
	Image       string `json:"image,omitempty"`
}
