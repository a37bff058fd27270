package order

import (
	"context"

	"github.com/Baruhatal/tbot/internal/domain"
)

// Repository stores orders keyed by their id. Orders are immutable once
// created.
type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
