package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Baruhatal/tbot/internal/domain"
)

func sampleOrder(id string) domain.Order {
	return domain.Order{
		ID:     id,
		UserID: 1,
		Items: []domain.CartItem{
			{ProductID: 1, Name: "Silver Needle", PriceCents: 4999, Quantity: 2},
		},
		TotalCents: 9998,
		Status:     domain.OrderPending,
		CreatedAt:  time.Now(),
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if err := repo.Create(ctx, sampleOrder("o1")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, "o1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "o1" || got.TotalCents != 9998 || got.Status != domain.OrderPending {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if err := repo.Create(ctx, sampleOrder("o1")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, sampleOrder("o1")); err == nil {
		t.Fatalf("expected error for duplicate order id")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewMemory()
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoredItemsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	o := sampleOrder("o1")
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}
	o.Items[0].Quantity = 99

	got, err := repo.GetByID(ctx, "o1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Items[0].Quantity != 2 {
		t.Fatalf("stored order shares items with caller slice: %+v", got.Items[0])
	}

	got.Items[0].Quantity = 50
	again, _ := repo.GetByID(ctx, "o1")
	if again.Items[0].Quantity != 2 {
		t.Fatalf("fetched order shares items with store: %+v", again.Items[0])
	}
}
