package shipping

import "github.com/google/uuid"

// Method is one of the fixed delivery options offered at checkout.
type Method struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Price                 int    `json:"price"`
	EstimatedDeliveryDays int    `json:"estimated_delivery_days"`
}

// Zone is an admin-managed geographic pricing region. It is not consumed by
// the buyer-facing checkout, which works off the fixed Method list.
type Zone struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Provinces     []string  `json:"provinces"`
	Fee           int       `json:"fee"`
	EstimatedDays int       `json:"estimated_days"`
	IsActive      bool      `json:"is_active"`
}

type NewZoneInput struct {
	Name          string
	Provinces     []string
	Fee           int
	EstimatedDays int
}

type UpdateZoneParams struct {
	ZoneID        string
	Name          *string
	Provinces     []string
	Fee           *int
	EstimatedDays *int
	IsActive      *bool
}
