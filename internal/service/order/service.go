package order

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Baruhatal/tbot/internal/domain"
	orderrepo "github.com/Baruhatal/tbot/internal/repository/order"
)

type Service struct {
	repo store
	now  func() time.Time
	seq  atomic.Uint64
}

type store interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create turns a non-empty cart snapshot into a stored pending order. The
// input slice is copied, never retained, and the source cart is not cleared
// here; clearing stays the caller's explicit step.
func (s *Service) Create(ctx context.Context, userID int64, items []domain.CartItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	o := domain.Order{
		ID:         s.nextID(),
		UserID:     userID,
		Items:      snapshot,
		TotalCents: domain.CartTotalCents(snapshot),
		Status:     domain.OrderPending,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Get returns a stored order by id, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// nextID combines the creation time with a per-process counter so two
// orders created within the same millisecond still get distinct ids.
func (s *Service) nextID() string {
	ts := strconv.FormatInt(s.now().UnixMilli(), 36)
	n := strconv.FormatUint(s.seq.Add(1), 36)
	return ts + "-" + n
}
