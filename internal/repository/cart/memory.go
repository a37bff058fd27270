package cart

import (
	"context"
	"sync"

	"github.com/Baruhatal/tbot/internal/domain"
)

// memoryRepo keeps carts in a process-wide map. All mutations run as a
// single read-modify-write under the lock, so concurrent adds for the same
// user and product are never lost.
type memoryRepo struct {
	mu    sync.RWMutex
	carts map[int64][]domain.CartItem
}

// NewMemory returns an empty in-memory cart store. Contents do not survive
// a process restart.
func NewMemory() Repository {
	return &memoryRepo{carts: make(map[int64][]domain.CartItem)}
}

func (r *memoryRepo) Get(_ context.Context, userID int64) ([]domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.carts[userID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *memoryRepo) Has(_ context.Context, userID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.carts[userID]
	return ok, nil
}

func (r *memoryRepo) AddItem(_ context.Context, userID int64, product domain.Product, quantity int) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[userID]
	merged := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartItem{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Quantity:   quantity,
		})
	}
	r.carts[userID] = items

	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *memoryRepo) SetItemQuantity(_ context.Context, userID, productID int64, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[userID]
	if !ok {
		return nil
	}
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			// Lines never stay visible at quantity zero.
			r.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
		items[i].Quantity = quantity
		return nil
	}
	return nil
}

func (r *memoryRepo) RemoveItem(_ context.Context, userID, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[userID]
	if !ok {
		return nil
	}
	for i := range items {
		if items[i].ProductID == productID {
			r.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryRepo) Clear(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
