package promo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"craftviet-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	IncrementUsage(ctx context.Context, code string) error

	List(ctx context.Context) ([]*PromoCode, error)
	Create(ctx context.Context, input NewPromoInput) (*PromoCode, error)
	Update(ctx context.Context, params UpdatePromoParams) (*PromoCode, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const promoColumns = `
	id, code, kind, value, minimum_order_amount, max_discount,
	start_date, end_date, is_active, usage_count, created_at
`

func scanPromo(row interface{ Scan(...any) error }) (*PromoCode, error) {
	var p PromoCode
	err := row.Scan(
		&p.ID, &p.Code, &p.Kind, &p.Value, &p.MinimumOrderAmount, &p.MaxDiscount,
		&p.StartDate, &p.EndDate, &p.IsActive, &p.UsageCount, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	// Codes are matched case-insensitively.
	const q = `
		SELECT ` + promoColumns + `
		FROM promo_codes
		WHERE UPPER(code) = UPPER($1)
		LIMIT 1
	`

	p, err := scanPromo(r.db.QueryRowContext(ctx, q, code))
	if err == sql.ErrNoRows {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) IncrementUsage(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE promo_codes
		SET usage_count = usage_count + 1
		WHERE UPPER(code) = UPPER($1)
	`, code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPromoNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*PromoCode, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Promo"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+promoColumns+` FROM promo_codes ORDER BY created_at DESC`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []*PromoCode
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *repository) Create(ctx context.Context, input NewPromoInput) (*PromoCode, error) {
	const q = `
		INSERT INTO promo_codes (
			id, code, kind, value, minimum_order_amount, max_discount,
			start_date, end_date, is_active, usage_count
		) VALUES ($1, UPPER($2), $3, $4, $5, $6, $7, $8, true, 0)
		RETURNING ` + promoColumns

	p, err := scanPromo(r.db.QueryRowContext(ctx, q,
		uuid.New().String(), input.Code, input.Kind, input.Value,
		input.MinimumOrderAmount, input.MaxDiscount,
		input.StartDate, input.EndDate,
	))
	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
		return nil, ErrCodeExists
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, params UpdatePromoParams) (*PromoCode, error) {
	sets := []string{}
	args := []any{}
	argIndex := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIndex))
		args = append(args, val)
		argIndex++
	}

	if params.Value != nil {
		add("value", *params.Value)
	}
	if params.MinimumOrderAmount != nil {
		add("minimum_order_amount", *params.MinimumOrderAmount)
	}
	if params.MaxDiscount != nil {
		add("max_discount", *params.MaxDiscount)
	}
	if params.StartDate != nil {
		add("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		add("end_date", *params.EndDate)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	q := fmt.Sprintf(`
		UPDATE promo_codes SET %s
		WHERE id = $%d
		RETURNING `+promoColumns, strings.Join(sets, ", "), argIndex)
	args = append(args, params.PromoID)

	p, err := scanPromo(r.db.QueryRowContext(ctx, q, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPromoNotFound
	}
	return nil
}
