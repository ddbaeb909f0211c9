package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uint
	FullName  string
	Email     string
	Password  string
	Phone     *string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    *string
}

// UpdateProfileParams carries the named optional fields a user may patch.
// Nil means "leave unchanged".
type UpdateProfileParams struct {
	UserID   uint
	FullName *string
	Phone    *string
}
