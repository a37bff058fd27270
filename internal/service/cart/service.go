package cart

import (
	"context"

	"github.com/Baruhatal/tbot/internal/domain"
	cartrepo "github.com/Baruhatal/tbot/internal/repository/cart"
)

type Service struct {
	repo store
}

type store interface {
	Get(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Has(ctx context.Context, userID int64) (bool, error)
	AddItem(ctx context.Context, userID int64, product domain.Product, quantity int) ([]domain.CartItem, error)
	SetItemQuantity(ctx context.Context, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's cart, empty for users with no cart yet. It never
// creates a cart entry.
func (s *Service) Get(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.repo.Get(ctx, userID)
}

// Add puts quantity units of product into the user's cart, merging into an
// existing line for the same product. Quantity must be positive.
func (s *Service) Add(ctx context.Context, userID int64, product domain.Product, quantity int) ([]domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.repo.AddItem(ctx, userID, product, quantity)
}

// SetQuantity sets a line's quantity directly. Zero or less removes the
// line; a missing line is a no-op.
func (s *Service) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	return s.repo.SetItemQuantity(ctx, userID, productID, quantity)
}

// Remove deletes the line for productID if present.
func (s *Service) Remove(ctx context.Context, userID, productID int64) error {
	return s.repo.RemoveItem(ctx, userID, productID)
}

// Clear deletes the user's whole cart.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
