package cart

import (
	"context"

	"craftviet-be/internal/logger"
	"craftviet-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, userID uint) ([]*Item, error)
	AddToCart(ctx context.Context, params AddParams) (*Item, error)
	UpdateQuantity(ctx context.Context, params UpdateParams) error
	RemoveFromCart(ctx context.Context, userID uint, itemID string) error
	ClearCart(ctx context.Context, userID uint) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) GetCart(ctx context.Context, userID uint) ([]*Item, error) {
	return s.repo.GetItems(ctx, userID)
}

func (s *service) AddToCart(ctx context.Context, params AddParams) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Cart"),
		zap.String("method", "AddToCart"),
		zap.Uint("user_id", params.UserID),
		zap.String("product_id", params.ProductID),
	)

	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// Only active products can be added.
	p, err := s.productRepo.GetByID(ctx, params.ProductID, true)
	if err != nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.repo.GetItemByVariant(ctx, params)
	if err != nil {
		return nil, err
	}

	// Same product + same chosen variant merges into one line.
	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}

	if p.Stock < finalQty {
		log.Warn("insufficient stock",
			zap.Int("stock", p.Stock),
			zap.Int("requested", finalQty),
		)
		return nil, ErrInsufficientStock
	}

	if existing == nil {
		return s.repo.CreateItem(ctx, params)
	}

	if err := s.repo.UpdateQuantity(ctx, params.UserID, existing.ID, finalQty); err != nil {
		return nil, err
	}
	existing.Quantity = finalQty
	return existing, nil
}

func (s *service) UpdateQuantity(ctx context.Context, params UpdateParams) error {
	// Zero or negative quantity removes the line.
	if params.Quantity <= 0 {
		return s.repo.RemoveItem(ctx, params.UserID, params.ItemID)
	}
	return s.repo.UpdateQuantity(ctx, params.UserID, params.ItemID, params.Quantity)
}

func (s *service) RemoveFromCart(ctx context.Context, userID uint, itemID string) error {
	return s.repo.RemoveItem(ctx, userID, itemID)
}

func (s *service) ClearCart(ctx context.Context, userID uint) error {
	return s.repo.Clear(ctx, userID)
}
