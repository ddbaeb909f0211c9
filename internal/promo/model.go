package promo

import "time"

type Kind string

const (
	KindPercentage   Kind = "PERCENTAGE"
	KindFixed        Kind = "FIXED"
	KindFreeShipping Kind = "FREE_SHIPPING"
)

type PromoCode struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Kind Kind   `json:"kind"`

	// Value is a percent for KindPercentage, an amount in đồng for
	// KindFixed, and unused for KindFreeShipping.
	Value int `json:"value"`

	MinimumOrderAmount int  `json:"minimum_order_amount"`
	MaxDiscount        *int `json:"max_discount,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`

	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Discount is the outcome of evaluating a code against an order draft.
type Discount struct {
	Code string
	Kind Kind

	// Amount is the đồng value taken off the order. For FREE_SHIPPING it
	// equals the shipping cost, for the other kinds it applies to the
	// subtotal.
	Amount int

	FreeShipping bool
}

type NewPromoInput struct {
	Code               string
	Kind               Kind
	Value              int
	MinimumOrderAmount int
	MaxDiscount        *int
	StartDate          time.Time
	EndDate            time.Time
}

// UpdatePromoParams carries the named optional fields an admin may patch.
type UpdatePromoParams struct {
	PromoID            string
	Value              *int
	MinimumOrderAmount *int
	MaxDiscount        *int
	StartDate          *time.Time
	EndDate            *time.Time
	IsActive           *bool
}
