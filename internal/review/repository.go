package review

import (
	"context"
	"database/sql"
	"fmt"

	"craftviet-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const PgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)
	List(ctx context.Context, filter ListFilter) ([]*Review, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetReply(ctx context.Context, id uuid.UUID, reply string) error
	IncrementVote(ctx context.Context, id uuid.UUID, helpful bool) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rev *Review) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Review"),
		zap.String("method", "Create"),
		zap.String("product_id", rev.ProductID),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, images, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`,
		rev.ID, rev.ProductID, rev.UserID, rev.UserName, rev.Rating, rev.Comment,
		pq.Array(rev.Images), rev.Status,
	).Scan(&rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
			return ErrAlreadyReviewed
		}
		log.Error("insert failed", zap.Error(err))
		return err
	}
	return nil
}

const reviewSelect = `
	SELECT id, product_id, user_id, user_name, rating, comment, images, status,
	       helpful, not_helpful, admin_reply, admin_reply_at,
	       created_at, updated_at
	FROM reviews
`

func scanReview(row interface{ Scan(...any) error }) (*Review, error) {
	var rev Review
	err := row.Scan(
		&rev.ID, &rev.ProductID, &rev.UserID, &rev.UserName,
		&rev.Rating, &rev.Comment, pq.Array(&rev.Images), &rev.Status,
		&rev.Helpful, &rev.NotHelpful, &rev.AdminReply, &rev.AdminReplyAt,
		&rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Review, error) {
	rev, err := scanReview(r.db.QueryRowContext(ctx, reviewSelect+` WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	return rev, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Review, error) {
	q := reviewSelect + ` WHERE 1=1`
	var args []any
	if filter.ProductID != nil {
		q += fmt.Sprintf(` AND product_id = $%d`, len(args)+1)
		args = append(args, *filter.ProductID)
	}
	if filter.Status != nil {
		q += fmt.Sprintf(` AND status = $%d`, len(args)+1)
		args = append(args, *filter.Status)
	}

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

	var reviews []*Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *repository) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reviews SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *repository) SetReply(ctx context.Context, id uuid.UUID, reply string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reviews SET admin_reply = $1, admin_reply_at = NOW(), updated_at = NOW()
		WHERE id = $2
	`, reply, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// IncrementVote bumps one of the counters in place; they never decrease.
func (r *repository) IncrementVote(ctx context.Context, id uuid.UUID, helpful bool) error {
	col := "not_helpful"
	if helpful {
		col = "helpful"
	}
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE reviews SET %s = %s + 1, updated_at = NOW() WHERE id = $1`, col, col), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}
