package domain

import "time"

// OrderStatus values an order can carry. Only OrderPending is assigned here;
// fulfillment and cancellation live outside this service.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
)

// Order is an immutable record created from a cart at checkout time. Items
// is a snapshot copy that shares nothing with the live cart.
type Order struct {
	ID         string      `json:"id"`
	UserID     int64       `json:"userId"`
	Items      []CartItem  `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}
