package domain

// CartItem is one product's line within a user's cart. Name and PriceCents
// are snapshots taken when the line was first added; they are not re-read
// from the catalog on later mutations.
type CartItem struct {
	ProductID  int64  `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// TotalCents returns the line subtotal.
func (i CartItem) TotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}

// CartTotalCents sums line subtotals across a cart.
func CartTotalCents(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.TotalCents()
	}
	return total
}
