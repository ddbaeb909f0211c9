package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"craftviet-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, error)
	SetRole(ctx context.Context, id uint, role Role) error
	SetActive(ctx context.Context, id uint, active bool) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	const q = `
		INSERT INTO users (full_name, email, password, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, q,
		u.FullName, u.Email, u.Password, u.Phone, u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
		return ErrEmailExists
	}
	return err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
		SELECT id, full_name, email, password, phone, role, is_active, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	const q = `
		SELECT id, full_name, email, password, phone, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "UpdateProfile"),
		zap.Uint("user_id", params.UserID),
	)

	sets := []string{}
	args := []any{}
	argIndex := 1

	if params.FullName != nil {
		sets = append(sets, fmt.Sprintf("full_name = $%d", argIndex))
		args = append(args, *params.FullName)
		argIndex++
	}
	if params.Phone != nil {
		sets = append(sets, fmt.Sprintf("phone = $%d", argIndex))
		args = append(args, *params.Phone)
		argIndex++
	}

	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	sets = append(sets, "updated_at = NOW()")

	q := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE id = $%d
		RETURNING id, full_name, email, password, phone, role, is_active, created_at, updated_at
	`, strings.Join(sets, ", "), argIndex)
	args = append(args, params.UserID)

	var u User
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]*User, error) {
	const q = `
		SELECT id, full_name, email, password, phone, role, is_active, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone,
			&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &u)
	}
	return res, rows.Err()
}

func (r *repository) SetRole(ctx context.Context, id uint, role Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) SetActive(ctx context.Context, id uint, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
