package catalog

import (
	"fmt"

	"github.com/Baruhatal/tbot/internal/domain"
)

// Filter narrows a catalog listing. The zero value matches everything.
type Filter struct {
	bestSellers bool
	category    string
}

var (
	// All matches every product.
	All = Filter{}
	// BestSellers matches products flagged as best sellers.
	BestSellers = Filter{bestSellers: true}
)

// Category matches products carrying the given category tag.
func Category(tag string) Filter {
	return Filter{category: tag}
}

func (f Filter) matches(p domain.Product) bool {
	if f.bestSellers && !p.BestSeller {
		return false
	}
	if f.category != "" && p.Category != f.category {
		return false
	}
	return true
}

// Entry is one row of the authored product table. Price is a decimal string
// converted to cents when the catalog is built.
type Entry struct {
	ID          int64
	Name        string
	Price       string
	Description string
	Category    string
	BestSeller  bool
	Image       string
}

// Catalog is the static, read-only set of purchasable products.
type Catalog struct {
	products []domain.Product
	byID     map[int64]domain.Product
}

// New builds a catalog from entries. Entries must have unique positive IDs
// and parseable prices.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(entries)),
		byID:     make(map[int64]domain.Product, len(entries)),
	}
	for _, e := range entries {
		if e.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive", e.Name)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id %d", e.Name, e.ID)
		}
		cents, err := domain.ParsePriceCents(e.Price)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", e.Name, err)
		}
		p := domain.Product{
			ID:          e.ID,
			Name:        e.Name,
			PriceCents:  cents,
			Description: e.Description,
			Category:    e.Category,
			BestSeller:  e.BestSeller,
			Image:       e.Image,
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c, nil
}

// List returns the products matching the filter, in catalog order.
func (c *Catalog) List(f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// FindByID returns the product with the given id, or domain.ErrNotFound.
// Absence is a normal outcome for callers, not a fault.
func (c *Catalog) FindByID(id int64) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Categories returns the distinct category tags in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
