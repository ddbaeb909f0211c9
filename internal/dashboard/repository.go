package dashboard

import (
	"context"
	"database/sql"

	"craftviet-be/internal/logger"
	"craftviet-be/internal/order"

	"go.uber.org/zap"
)

// Repository loads the order fields the aggregator needs. It deliberately
// skips addresses and history; the dashboard never shows them.
type Repository interface {
	FetchOrders(ctx context.Context) ([]*order.Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Dashboard"),
		zap.String("method", "FetchOrders"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, total, status, created_at
		FROM orders
	`)
	if err != nil {
		log.Error("query orders failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*order.Order
	index := map[string]*order.Order{}
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
		index[o.ID.String()] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, name, unit_price, quantity
		FROM order_items
	`)
	if err != nil {
		log.Error("query items failed", zap.Error(err))
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID string
			it      order.Item
		)
		if err := itemRows.Scan(&orderID, &it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		if o, ok := index[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return orders, itemRows.Err()
}
