package checkout

import "errors"

var (
	ErrSessionNotFound   = errors.New("checkout session not found")
	ErrSessionExpired    = errors.New("checkout session expired")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrStepGuard         = errors.New("current step is incomplete")
	ErrAlreadyAtFirst    = errors.New("already at the first step")
	ErrNotAtConfirmation = errors.New("not at the confirmation step")
	ErrAddressNotFound   = errors.New("address not found")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrWrongStep         = errors.New("operation not allowed at this step")
)
