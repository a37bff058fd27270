package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates checkout was attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidQuantity indicates a non-positive quantity was passed where
	// a positive one is required.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
