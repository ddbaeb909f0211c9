package review

import (
	"context"
	"strings"

	"craftviet-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for product reviews.
type Service interface {
	// Create submits a review; it stays pending until moderated.
	Create(ctx context.Context, input CreateInput) (*Review, error)

	// ListForProduct returns only approved reviews.
	ListForProduct(ctx context.Context, productID string, limit, page int) ([]*Review, error)

	Vote(ctx context.Context, id uuid.UUID, helpful bool) error

	// Admin moderation.
	ListAll(ctx context.Context, filter ListFilter) ([]*Review, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Reply(ctx context.Context, id uuid.UUID, reply string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Review"),
		zap.String("method", "Create"),
		zap.String("product_id", input.ProductID),
		zap.Uint("user_id", input.UserID),
	)

	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, ErrEmptyComment
	}

	rev := &Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Images:    input.Images,
		Status:    StatusPending,
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	log.Info("review submitted", zap.String("review_id", rev.ID.String()))
	return rev, nil
}

func (s *service) ListForProduct(ctx context.Context, productID string, limit, page int) ([]*Review, error) {
	approved := StatusApproved
	return s.repo.List(ctx, ListFilter{
		ProductID: &productID,
		Status:    &approved,
		Limit:     limit,
		Page:      page,
	})
}

func (s *service) Vote(ctx context.Context, id uuid.UUID, helpful bool) error {
	// Votes only count on visible reviews.
	rev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rev.Status != StatusApproved {
		return ErrReviewNotFound
	}
	return s.repo.IncrementVote(ctx, id, helpful)
}

func (s *service) ListAll(ctx context.Context, filter ListFilter) ([]*Review, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetStatus(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetStatus(ctx, id, StatusRejected)
}

func (s *service) Reply(ctx context.Context, id uuid.UUID, reply string) error {
	if strings.TrimSpace(reply) == "" {
		return ErrEmptyReply
	}
	return s.repo.SetReply(ctx, id, strings.TrimSpace(reply))
}
