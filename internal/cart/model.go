package cart

import "time"

// Item is one cart line: a product plus the chosen variant options.
type Item struct {
	ID            string    `json:"id"`
	UserID        uint      `json:"user_id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	UnitPrice     int       `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	SelectedColor *string   `json:"selected_color,omitempty"`
	SelectedSize  *string   `json:"selected_size,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LineSubtotal is unit price times quantity.
func (i Item) LineSubtotal() int {
	return i.UnitPrice * i.Quantity
}

// Subtotal sums line subtotals over a cart snapshot.
func Subtotal(items []*Item) int {
	total := 0
	for _, it := range items {
		total += it.LineSubtotal()
	}
	return total
}

type AddParams struct {
	UserID        uint
	ProductID     string
	Quantity      int
	SelectedColor *string
	SelectedSize  *string
}

type UpdateParams struct {
	UserID   uint
	ItemID   string
	Quantity int
}
