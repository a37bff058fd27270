package catalog

import (
	"errors"
	"testing"

	"github.com/Baruhatal/tbot/internal/domain"
)

func testEntries() []Entry {
	return []Entry{
		{ID: 1, Name: "Silver Needle", Price: "49.99", Category: "teas", BestSeller: true},
		{ID: 2, Name: "Jasmine Pearls", Price: "29.99", Category: "teas", BestSeller: true},
		{ID: 3, Name: "Cast Iron Teapot", Price: "74.99", Category: "accessories"},
	}
}

func TestNewConvertsPricesToCents(t *testing.T) {
	c, err := New(testEntries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, err := c.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if p.PriceCents != 4999 {
		t.Fatalf("expected 4999 cents, got %d", p.PriceCents)
	}
}

func TestNewRejectsBadEntries(t *testing.T) {
	if _, err := New([]Entry{{ID: 0, Name: "Bad", Price: "1.00"}}); err == nil {
		t.Fatalf("expected error for non-positive id")
	}
	if _, err := New([]Entry{
		{ID: 1, Name: "A", Price: "1.00"},
		{ID: 1, Name: "B", Price: "2.00"},
	}); err == nil {
		t.Fatalf("expected error for duplicate id")
	}
	if _, err := New([]Entry{{ID: 1, Name: "Bad", Price: "not-a-price"}}); err == nil {
		t.Fatalf("expected error for unparseable price")
	}
}

func TestListFilters(t *testing.T) {
	c, err := New(testEntries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := len(c.List(All)); got != 3 {
		t.Fatalf("List(All): expected 3 products, got %d", got)
	}

	best := c.List(BestSellers)
	if len(best) != 2 {
		t.Fatalf("List(BestSellers): expected 2 products, got %d", len(best))
	}
	for _, p := range best {
		if !p.BestSeller {
			t.Fatalf("List(BestSellers) returned non-best-seller %+v", p)
		}
	}

	teas := c.List(Category("teas"))
	if len(teas) != 2 {
		t.Fatalf("List(Category teas): expected 2 products, got %d", len(teas))
	}
	if teas[0].ID != 1 || teas[1].ID != 2 {
		t.Fatalf("expected catalog order, got %+v", teas)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	c, err := New(testEntries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.FindByID(99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoriesDistinctInOrder(t *testing.T) {
	c, err := New(testEntries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := c.Categories()
	want := []string{"teas", "accessories"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDefaultCatalogBuilds(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(c.List(All)) == 0 {
		t.Fatalf("default catalog is empty")
	}
	if len(c.List(BestSellers)) == 0 {
		t.Fatalf("default catalog has no best sellers")
	}
}
