package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("cancellation reason is required")
	ErrTotalMismatch     = errors.New("order total does not match its parts")
	ErrDiscountTooLarge  = errors.New("discount exceeds order value")
	ErrNoItems           = errors.New("order has no items")
	ErrInsufficientStock = errors.New("insufficient stock")
)
