package review

import (
	"time"

	"github.com/google/uuid"
)

// Status is the moderation state. Only approved reviews are public.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`

	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`

	Status Status `json:"status"`

	// Vote counters only ever go up.
	Helpful    int `json:"helpful"`
	NotHelpful int `json:"not_helpful"`

	AdminReply   *string    `json:"admin_reply,omitempty"`
	AdminReplyAt *time.Time `json:"admin_reply_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateInput struct {
	ProductID string
	UserID    uint
	UserName  string
	Rating    int
	Comment   string
	Images    []string
}

type ListFilter struct {
	ProductID *string
	Status    *Status
	Limit     int
	Page      int
}
