package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/Baruhatal/tbot/internal/domain"
)

var (
	tea    = domain.Product{ID: 1, Name: "Silver Needle", PriceCents: 4999}
	teapot = domain.Product{ID: 5, Name: "Cast Iron Teapot", PriceCents: 7499}
)

func TestGetUnknownUserIsEmptyAndDoesNotCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	items, err := repo.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}

	has, err := repo.Has(ctx, 42)
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if has {
		t.Fatalf("Get must not create a cart entry")
	}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.AddItem(ctx, 1, tea, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	items, err := repo.AddItem(ctx, 1, tea, 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line per product, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	if items[0].Name != tea.Name || items[0].PriceCents != tea.PriceCents {
		t.Fatalf("expected product snapshot, got %+v", items[0])
	}
}

func TestAddItemAppendsDistinctProductsInOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.AddItem(ctx, 1, tea, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	items, err := repo.AddItem(ctx, 1, teapot, 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != tea.ID || items[1].ProductID != teapot.ID {
		t.Fatalf("expected insertion order, got %+v", items)
	}
}

func TestSetItemQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.AddItem(ctx, 1, tea, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.SetItemQuantity(ctx, 1, tea.ID, 0); err != nil {
		t.Fatalf("SetItemQuantity: %v", err)
	}
	items, _ := repo.Get(ctx, 1)
	for _, item := range items {
		if item.ProductID == tea.ID {
			t.Fatalf("line should be removed at quantity zero, got %+v", item)
		}
	}
}

func TestSetItemQuantityMissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if err := repo.SetItemQuantity(ctx, 1, 99, 5); err != nil {
		t.Fatalf("SetItemQuantity on missing line: %v", err)
	}
	items, _ := repo.Get(ctx, 1)
	if len(items) != 0 {
		t.Fatalf("no-op must not create lines, got %+v", items)
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.AddItem(ctx, 1, tea, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := repo.AddItem(ctx, 1, teapot, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.RemoveItem(ctx, 1, tea.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	items, _ := repo.Get(ctx, 1)
	if len(items) != 1 || items[0].ProductID != teapot.ID {
		t.Fatalf("expected only teapot left, got %+v", items)
	}

	// Removing an absent line is a no-op.
	if err := repo.RemoveItem(ctx, 1, tea.ID); err != nil {
		t.Fatalf("RemoveItem absent line: %v", err)
	}
}

func TestClearDeletesEntry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.AddItem(ctx, 1, tea, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.Clear(ctx, 1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	items, _ := repo.Get(ctx, 1)
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
	has, _ := repo.Has(ctx, 1)
	if has {
		t.Fatalf("expected cart entry gone after clear")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if _, err := repo.AddItem(ctx, 1, tea, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	items, _ := repo.Get(ctx, 1)
	items[0].Quantity = 99

	again, _ := repo.Get(ctx, 1)
	if again[0].Quantity != 1 {
		t.Fatalf("mutating a returned slice must not touch the store, got %+v", again[0])
	}
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.AddItem(ctx, 7, tea, 1); err != nil {
				t.Errorf("AddItem: %v", err)
			}
		}()
	}
	wg.Wait()

	items, _ := repo.Get(ctx, 7)
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != n {
		t.Fatalf("expected quantity %d, got %d (lost updates)", n, items[0].Quantity)
	}
}
