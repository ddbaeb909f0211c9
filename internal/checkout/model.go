package checkout

import (
	"time"

	"github.com/google/uuid"
)

// Step is the position in the five-step checkout flow.
type Step int

const (
	StepCart Step = iota + 1
	StepAddress
	StepShipping
	StepPayment
	StepConfirmation
)

const SessionTTL = 30 * time.Minute

// Session is the whole checkout state, persisted as one blob keyed by user.
// Every price in it is server-calculated; nothing from the client survives
// into Pricing.
type Session struct {
	ID     uuid.UUID `json:"id"`
	UserID uint      `json:"user_id"`
	Step   Step      `json:"step"`

	Items []SessionItem `json:"items"`

	AddressID        *uuid.UUID `json:"address_id,omitempty"`
	ShippingMethodID *string    `json:"shipping_method_id,omitempty"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PromoCode        *string    `json:"promo_code,omitempty"`

	Pricing Pricing `json:"pricing"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionItem snapshots one cart line at the moment checkout started.
type SessionItem struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	UnitPrice     int     `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	SelectedColor *string `json:"selected_color,omitempty"`
	SelectedSize  *string `json:"selected_size,omitempty"`
}

func (i SessionItem) LineSubtotal() int {
	return i.UnitPrice * i.Quantity
}

type Pricing struct {
	Subtotal     int  `json:"subtotal"`
	ShippingCost int  `json:"shipping_cost"`
	Discount     int  `json:"discount"`
	Total        int  `json:"total"`
	FreeShipping bool `json:"free_shipping"`
}

// CanAdvance reports whether the session satisfies the guard for leaving
// its current step. Steps only ever move one at a time.
func (s *Session) CanAdvance() bool {
	switch s.Step {
	case StepCart:
		return len(s.Items) > 0
	case StepAddress:
		return s.AddressID != nil
	case StepShipping:
		return s.ShippingMethodID != nil
	case StepPayment:
		return s.PaymentMethod != nil
	default:
		return false
	}
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
