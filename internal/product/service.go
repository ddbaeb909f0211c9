package product

import (
	"context"

	"craftviet-be/internal/logger"
	"craftviet-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the business logic for the catalog.
type Service interface {
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	Get(ctx context.Context, idOrSlug string) (*Product, error)

	// Admin operations.
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	return s.repo.List(ctx, opts)
}

// Get resolves either a product id or a slug; the storefront links by slug,
// the admin console by id.
func (s *service) Get(ctx context.Context, idOrSlug string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, idOrSlug, true)
	if err == nil {
		return p, nil
	}
	return s.repo.GetBySlug(ctx, idOrSlug)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Product"),
		zap.String("method", "Create"),
		zap.String("name", input.Name),
	)

	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}

	p := &Product{
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Category:    input.Category,
		Colors:      input.Colors,
		Sizes:       input.Sizes,
		Stock:       input.Stock,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	if !params.HasAnyField() {
		return nil, ErrNothingToUpdate
	}
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
