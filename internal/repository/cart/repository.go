package cart

import (
	"context"

	"github.com/Baruhatal/tbot/internal/domain"
)

// Repository stores per-user carts keyed by an opaque user identifier. The
// store performs no authentication; callers supply the key.
type Repository interface {
	// Get returns a copy of the user's cart lines, oldest first. Unknown
	// users get an empty slice; reading never creates a cart entry.
	Get(ctx context.Context, userID int64) ([]domain.CartItem, error)
	// Has reports whether a cart entry exists for the user.
	Has(ctx context.Context, userID int64) (bool, error)
	// AddItem merges quantity into an existing line for the product or
	// appends a new line snapshotting the product's name and price. It
	// creates the user's cart entry if absent and returns the updated cart.
	AddItem(ctx context.Context, userID int64, product domain.Product, quantity int) ([]domain.CartItem, error)
	// SetItemQuantity sets a line's quantity directly. A quantity of zero
	// or less removes the line. Missing lines are a no-op.
	SetItemQuantity(ctx context.Context, userID, productID int64, quantity int) error
	// RemoveItem deletes the line for the product if present.
	RemoveItem(ctx context.Context, userID, productID int64) error
	// Clear deletes the user's entire cart entry.
	Clear(ctx context.Context, userID int64) error
}
