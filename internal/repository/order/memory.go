package order

import (
	"context"
	"fmt"
	"sync"

	"github.com/Baruhatal/tbot/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

// NewMemory returns an empty in-memory order store.
func NewMemory() Repository {
	return &memoryRepo{orders: make(map[string]domain.Order)}
}

func (r *memoryRepo) Create(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[o.ID]; exists {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	items := make([]domain.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	r.orders[o.ID] = o
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	items := make([]domain.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return &o, nil
}
