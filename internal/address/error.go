package address

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("address not found")
	ErrInvalidID       = errors.New("invalid address id")
)
