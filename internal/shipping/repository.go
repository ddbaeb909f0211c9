package shipping

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
	ListMethods(ctx context.Context) ([]*Method, error)
	GetMethod(ctx context.Context, id string) (*Method, error)

	ListZones(ctx context.Context) ([]*Zone, error)
	CreateZone(ctx context.Context, z *Zone) error
	UpdateZone(ctx context.Context, params UpdateZoneParams) (*Zone, error)
	DeactivateZone(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListMethods(ctx context.Context) ([]*Method, error) {
	const q = `
		SELECT id, name, price, estimated_delivery_days
		FROM shipping_methods
		ORDER BY price ASC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Method
	for rows.Next() {
		var m Method
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.EstimatedDeliveryDays); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

func (r *repository) GetMethod(ctx context.Context, id string) (*Method, error) {
	const q = `
		SELECT id, name, price, estimated_delivery_days
		FROM shipping_methods
		WHERE id = $1
		LIMIT 1
	`

	var m Method
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Name, &m.Price, &m.EstimatedDeliveryDays)
	if err == sql.ErrNoRows {
		return nil, ErrMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListZones(ctx context.Context) ([]*Zone, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Shipping"),
		zap.String("method", "ListZones"),
	)

	const q = `
		SELECT id, name, provinces, fee, estimated_days, is_active
		FROM shipping_zones
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []*Zone
	for rows.Next() {
		var z Zone
		if err := rows.Scan(
			&z.ID, &z.Name, pq.Array(&z.Provinces),
			&z.Fee, &z.EstimatedDays, &z.IsActive,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, &z)
	}
	return res, rows.Err()
}

func (r *repository) CreateZone(ctx context.Context, z *Zone) error {
	const q = `
		INSERT INTO shipping_zones (id, name, provinces, fee, estimated_days, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, q,
		z.ID, z.Name, pq.Array(z.Provinces), z.Fee, z.EstimatedDays, z.IsActive)
	return err
}

func (r *repository) UpdateZone(ctx context.Context, params UpdateZoneParams) (*Zone, error) {
	sets := []string{}
	args := []any{}
	argIndex := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIndex))
		args = append(args, val)
		argIndex++
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Provinces != nil {
		add("provinces", pq.Array(params.Provinces))
	}
	if params.Fee != nil {
		add("fee", *params.Fee)
	}
	if params.EstimatedDays != nil {
		add("estimated_days", *params.EstimatedDays)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	q := fmt.Sprintf(`
		UPDATE shipping_zones SET %s
		WHERE id = $%d
		RETURNING id, name, provinces, fee, estimated_days, is_active
	`, strings.Join(sets, ", "), argIndex)
	args = append(args, params.ZoneID)

	var z Zone
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&z.ID, &z.Name, pq.Array(&z.Provinces),
		&z.Fee, &z.EstimatedDays, &z.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *repository) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shipping_zones SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrZoneNotFound
	}
	return nil
}
