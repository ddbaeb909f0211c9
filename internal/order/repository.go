package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"craftviet-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]*Order, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Order, error)
	AppendStatus(ctx context.Context, id uuid.UUID, status Status, note *string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create writes the order, its items, the opening history entry, and the
// stock deduction in one transaction. Stock is checked in the UPDATE itself
// so two concurrent confirmations cannot oversell.
func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "Create"),
		zap.String("order_number", o.OrderNumber),
	)

	addrJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, shipping_address,
			shipping_method_id, shipping_method_name, payment_method, promo_code,
			subtotal, shipping_cost, discount, total, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`,
		o.ID, o.OrderNumber, o.UserID, addrJSON,
		o.ShippingMethodID, o.ShippingMethodName, o.PaymentMethod, o.PromoCode,
		o.Subtotal, o.ShippingCost, o.Discount, o.Total, o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("insert order failed", zap.Error(err))
		return err
	}

	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID

		res, err := tx.ExecContext(ctx, `
			UPDATE products SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, it.Quantity, it.ProductID)
		if err != nil {
			log.Error("stock deduction failed", zap.Error(err))
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: product %s", ErrInsufficientStock, it.ProductID)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				id, order_id, product_id, name, unit_price, quantity,
				selected_color, selected_size
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			it.ID, o.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity,
			it.SelectedColor, it.SelectedSize,
		)
		if err != nil {
			log.Error("insert item failed", zap.Error(err))
			return err
		}
	}

	var first StatusEntry
	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_status_history (order_id, status)
		VALUES ($1, $2)
		RETURNING status, created_at
	`, o.ID, o.Status).Scan(&first.Status, &first.Date)
	if err != nil {
		log.Error("insert history failed", zap.Error(err))
		return err
	}
	o.StatusHistory = []StatusEntry{first}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var (
		o        Order
		addrJSON []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_number, user_id, shipping_address,
		       shipping_method_id, shipping_method_name, payment_method, promo_code,
		       subtotal, shipping_cost, discount, total, status,
		       created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &addrJSON,
		&o.ShippingMethodID, &o.ShippingMethodName, &o.PaymentMethod, &o.PromoCode,
		&o.Subtotal, &o.ShippingCost, &o.Discount, &o.Total, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addrJSON, &o.ShippingAddress); err != nil {
		return nil, err
	}
	if o.Items, err = r.loadItems(ctx, o.ID); err != nil {
		return nil, err
	}
	if o.StatusHistory, err = r.loadHistory(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) loadItems(ctx context.Context, orderID uuid.UUID) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, unit_price, quantity,
		       selected_color, selected_size
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.UnitPrice,
			&it.Quantity, &it.SelectedColor, &it.SelectedSize,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) loadHistory(ctx context.Context, orderID uuid.UUID) ([]StatusEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, created_at, note
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []StatusEntry
	for rows.Next() {
		var e StatusEntry
		if err := rows.Scan(&e.Status, &e.Date, &e.Note); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

const listSelect = `
	SELECT id, order_number, user_id, shipping_address,
	       shipping_method_id, shipping_method_name, payment_method, promo_code,
	       subtotal, shipping_cost, discount, total, status,
	       created_at, updated_at
	FROM orders
`

func (r *repository) ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]*Order, error) {
	q := listSelect + ` WHERE user_id = $1`
	args := []any{userID}
	if filter.Status != nil {
		q += fmt.Sprintf(` AND status = $%d`, len(args)+1)
		args = append(args, *filter.Status)
	}
	return r.list(ctx, q, args, filter)
}

func (r *repository) ListAll(ctx context.Context, filter ListFilter) ([]*Order, error) {
	q := listSelect
	var args []any
	if filter.Status != nil {
		q += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	return r.list(ctx, q, args, filter)
}

func (r *repository) list(ctx context.Context, q string, args []any, filter ListFilter) ([]*Order, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var (
			o        Order
			addrJSON []byte
		)
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &addrJSON,
			&o.ShippingMethodID, &o.ShippingMethodName, &o.PaymentMethod, &o.PromoCode,
			&o.Subtotal, &o.ShippingCost, &o.Discount, &o.Total, &o.Status,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(addrJSON, &o.ShippingAddress); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// AppendStatus moves the order to status and records the history row in one
// transaction. History is append only; rows are never updated or deleted.
func (r *repository) AppendStatus(ctx context.Context, id uuid.UUID, status Status, note *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_history (order_id, status, note)
		VALUES ($1, $2, $3)
	`, id, status, note)
	if err != nil {
		return err
	}

	return tx.Commit()
}
