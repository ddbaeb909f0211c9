package cart

import (
	"context"
	"database/sql"

	"craftviet-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetItems(ctx context.Context, userID uint) ([]*Item, error)
	GetItemByVariant(ctx context.Context, params AddParams) (*Item, error)
	CreateItem(ctx context.Context, params AddParams) (*Item, error)
	UpdateQuantity(ctx context.Context, userID uint, itemID string, quantity int) error
	RemoveItem(ctx context.Context, userID uint, itemID string) error
	Clear(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Cart rows join products so the unit price always reflects the catalog,
// never a client-supplied value.
const itemSelect = `
	SELECT
		c.id, c.user_id, c.product_id, p.name, p.price,
		c.quantity, c.selected_color, c.selected_size,
		c.created_at, c.updated_at
	FROM carts c
	JOIN products p ON p.id = c.product_id
`

func (r *repository) GetItems(ctx context.Context, userID uint) ([]*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Cart"),
		zap.String("method", "GetItems"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx,
		itemSelect+` WHERE c.user_id = $1 ORDER BY c.created_at`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductID, &it.ProductName, &it.UnitPrice,
			&it.Quantity, &it.SelectedColor, &it.SelectedSize,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *repository) GetItemByVariant(ctx context.Context, params AddParams) (*Item, error) {
	const q = itemSelect + `
		WHERE c.user_id = $1
		  AND c.product_id = $2
		  AND c.selected_color IS NOT DISTINCT FROM $3
		  AND c.selected_size IS NOT DISTINCT FROM $4
		LIMIT 1
	`

	var it Item
	err := r.db.QueryRowContext(ctx, q,
		params.UserID, params.ProductID, params.SelectedColor, params.SelectedSize,
	).Scan(
		&it.ID, &it.UserID, &it.ProductID, &it.ProductName, &it.UnitPrice,
		&it.Quantity, &it.SelectedColor, &it.SelectedSize,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) CreateItem(ctx context.Context, params AddParams) (*Item, error) {
	const q = `
		INSERT INTO carts (id, user_id, product_id, quantity, selected_color, selected_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	it := &Item{
		UserID:        params.UserID,
		ProductID:     params.ProductID,
		Quantity:      params.Quantity,
		SelectedColor: params.SelectedColor,
		SelectedSize:  params.SelectedSize,
	}

	err := r.db.QueryRowContext(ctx, q,
		uuid.New().String(), params.UserID, params.ProductID,
		params.Quantity, params.SelectedColor, params.SelectedSize,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, userID uint, itemID string, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE carts SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, quantity, itemID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) RemoveItem(ctx context.Context, userID uint, itemID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM carts WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) Clear(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
