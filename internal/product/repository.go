package product

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
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id string, onlyActive bool) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Deactivate(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, name, slug, description, price, images,
	category, colors, sizes, stock, is_active, created_at
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price,
		pq.Array(&p.Images), &p.Category, pq.Array(&p.Colors),
		pq.Array(&p.Sizes), &p.Stock, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Product"),
		zap.String("method", "List"),
	)

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	argIndex := 1

	if opts.OnlyActive {
		query += " AND is_active = true"
	}

	if opts.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+opts.Search+"%")
		argIndex++
	}

	if opts.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, opts.Category)
		argIndex++
	}

	switch opts.Sort {
	case "price_asc":
		query += " ORDER BY price ASC"
	case "price_desc":
		query += " ORDER BY price DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}

	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string, onlyActive bool) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if onlyActive {
		query += " AND is_active = true"
	}
	query += " LIMIT 1"

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1 AND is_active = true LIMIT 1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	const q = `
		INSERT INTO products (
			id, name, slug, description, price, images,
			category, colors, sizes, stock, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,true)
		RETURNING created_at
	`

	return r.db.QueryRowContext(ctx, q,
		p.ID, p.Name, p.Slug, p.Description, p.Price, pq.Array(p.Images),
		p.Category, pq.Array(p.Colors), pq.Array(p.Sizes), p.Stock,
	).Scan(&p.CreatedAt)
}

func (r *repository) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
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
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.Images != nil {
		add("images", pq.Array(params.Images))
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.Colors != nil {
		add("colors", pq.Array(params.Colors))
	}
	if params.Sizes != nil {
		add("sizes", pq.Array(params.Sizes))
	}
	if params.Stock != nil {
		add("stock", *params.Stock)
	}

	if len(sets) == 0 {
		return nil, ErrNothingToUpdate
	}

	q := fmt.Sprintf(`
		UPDATE products SET %s
		WHERE id = $%d
		RETURNING `+productColumns, strings.Join(sets, ", "), argIndex)
	args = append(args, params.ProductID)

	p, err := scanProduct(r.db.QueryRowContext(ctx, q, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
