package product

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Price       int       `json:"price"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Colors      []string  `json:"colors"`
	Sizes       []string  `json:"sizes"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewProductInput struct {
	Name        string
	Description *string
	Price       int
	Images      []string
	Category    string
	Colors      []string
	Sizes       []string
	Stock       int
}

// UpdateProductParams carries the named optional fields an admin may patch.
// Nil means "leave unchanged".
type UpdateProductParams struct {
	ProductID   string
	Name        *string
	Description *string
	Price       *int
	Images      []string
	Category    *string
	Colors      []string
	Sizes       []string
	Stock       *int
}

func (p UpdateProductParams) HasAnyField() bool {
	return p.Name != nil ||
		p.Description != nil ||
		p.Price != nil ||
		p.Images != nil ||
		p.Category != nil ||
		p.Colors != nil ||
		p.Sizes != nil ||
		p.Stock != nil
}

type ListOptions struct {
	Search   string
	Category string
	Sort     string // "price_asc", "price_desc", "newest"
	Limit    int
	Page     int
	// OnlyActive hides deactivated products from the storefront.
	OnlyActive bool
}
