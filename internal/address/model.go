package address

import (
	"github.com/google/uuid"
)

type Address struct {
	ID     uuid.UUID `json:"id"`
	UserID uint      `json:"user_id"`

	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email,omitempty"`

	Street     string  `json:"street"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	PostalCode *string `json:"postal_code,omitempty"`

	IsDefault bool `json:"is_default"`
	IsActive  bool `json:"is_active"`
}

type CreateAddressInput struct {
	FullName     string
	Phone        string
	Email        *string
	Street       string
	City         string
	Province     string
	PostalCode   *string
	SetAsDefault bool
}

type UpdateAddressInput struct {
	AddressID    string
	FullName     string
	Phone        string
	Email        *string
	Street       string
	City         string
	Province     string
	PostalCode   *string
	SetAsDefault bool
}
