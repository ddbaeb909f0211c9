package promo

import "errors"

var (
	// ErrInvalidCode covers unknown, inactive, expired, not-yet-started
	// and below-minimum codes alike. The storefront shows one generic
	// message for all of them.
	ErrInvalidCode = errors.New("invalid promo code")

	ErrCodeExists      = errors.New("promo code already exists")
	ErrPromoNotFound   = errors.New("promo code not found")
	ErrInvalidKind     = errors.New("invalid promo kind")
	ErrInvalidValue    = errors.New("invalid promo value")
	ErrNothingToUpdate = errors.New("no fields to update")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
