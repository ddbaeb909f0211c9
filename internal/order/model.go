package order

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	UserID      uint      `json:"user_id"`

	Items []Item `json:"items"`

	// The address is snapshotted at confirmation; later edits to the
	// user's address book never touch placed orders.
	ShippingAddress AddressSnapshot `json:"shipping_address"`

	ShippingMethodID   string  `json:"shipping_method_id"`
	ShippingMethodName string  `json:"shipping_method_name"`
	PaymentMethod      string  `json:"payment_method"`
	PromoCode          *string `json:"promo_code,omitempty"`

	Subtotal     int `json:"subtotal"`
	ShippingCost int `json:"shipping_cost"`
	Discount     int `json:"discount"`
	Total        int `json:"total"`

	Status        Status        `json:"status"`
	StatusHistory []StatusEntry `json:"status_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Item struct {
	ID            string    `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	UnitPrice     int       `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	SelectedColor *string   `json:"selected_color,omitempty"`
	SelectedSize  *string   `json:"selected_size,omitempty"`
}

func (i Item) LineSubtotal() int {
	return i.UnitPrice * i.Quantity
}

// StatusEntry is one line of the append-only status history.
type StatusEntry struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
	Note   *string   `json:"note,omitempty"`
}

// AddressSnapshot is the shipping address frozen into the order row (JSONB).
type AddressSnapshot struct {
	FullName   string  `json:"full_name"`
	Phone      string  `json:"phone"`
	Email      *string `json:"email,omitempty"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// CreateParams is everything the checkout confirmation hands over.
type CreateParams struct {
	UserID             uint
	Items              []Item
	ShippingAddress    AddressSnapshot
	ShippingMethodID   string
	ShippingMethodName string
	PaymentMethod      string
	PromoCode          *string
	Subtotal           int
	ShippingCost       int
	Discount           int
	Total              int
}

type ListFilter struct {
	Status *Status
	Limit  int
	Page   int
}
