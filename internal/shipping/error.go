package shipping

import "errors"

var (
	ErrMethodNotFound  = errors.New("shipping method not found")
	ErrZoneNotFound    = errors.New("shipping zone not found")
	ErrInvalidFee      = errors.New("fee must not be negative")
	ErrNothingToUpdate = errors.New("no fields to update")
)
