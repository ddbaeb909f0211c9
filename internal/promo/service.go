package promo

import (
	"context"
	"time"

	"craftviet-be/internal/logger"

	"go.uber.org/zap"
)

// Service evaluates promo codes against order drafts and manages the code
// catalog for the admin console.
type Service interface {
	// Evaluate resolves a candidate code against the current subtotal and
	// shipping cost. Every rejection reason collapses into ErrInvalidCode.
	Evaluate(ctx context.Context, code string, subtotal, shippingCost int) (*Discount, error)

	// RecordUsage bumps the usage counter after an order using the code
	// is placed.
	RecordUsage(ctx context.Context, code string) error

	// Admin operations.
	ListCodes(ctx context.Context) ([]*PromoCode, error)
	CreateCode(ctx context.Context, input NewPromoInput) (*PromoCode, error)
	UpdateCode(ctx context.Context, params UpdatePromoParams) (*PromoCode, error)
	DeleteCode(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Evaluate(ctx context.Context, code string, subtotal, shippingCost int) (*Discount, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Promo"),
		zap.String("method", "Evaluate"),
		zap.String("code", code),
		zap.Int("subtotal", subtotal),
	)

	pc, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		log.Debug("code not found")
		return nil, ErrInvalidCode
	}

	now := s.now()
	if !pc.IsActive || now.Before(pc.StartDate) || now.After(pc.EndDate) {
		log.Debug("code inactive or outside validity window")
		return nil, ErrInvalidCode
	}

	if subtotal < pc.MinimumOrderAmount {
		log.Debug("minimum order not met",
			zap.Int("minimum", pc.MinimumOrderAmount),
		)
		return nil, ErrInvalidCode
	}

	d := &Discount{Code: pc.Code, Kind: pc.Kind}

	switch pc.Kind {
	case KindPercentage:
		d.Amount = subtotal * pc.Value / 100
		if pc.MaxDiscount != nil && d.Amount > *pc.MaxDiscount {
			d.Amount = *pc.MaxDiscount
		}
	case KindFixed:
		d.Amount = pc.Value
	case KindFreeShipping:
		d.Amount = shippingCost
		d.FreeShipping = true
	default:
		return nil, ErrInvalidCode
	}

	// A subtotal discount never exceeds the subtotal it discounts.
	if !d.FreeShipping && d.Amount > subtotal {
		d.Amount = subtotal
	}
	if d.Amount < 0 {
		d.Amount = 0
	}

	log.Info("promo applied",
		zap.String("kind", string(d.Kind)),
		zap.Int("discount", d.Amount),
	)

	return d, nil
}

func (s *service) RecordUsage(ctx context.Context, code string) error {
	return s.repo.IncrementUsage(ctx, code)
}

func (s *service) ListCodes(ctx context.Context) ([]*PromoCode, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateCode(ctx context.Context, input NewPromoInput) (*PromoCode, error) {
	switch input.Kind {
	case KindPercentage:
		if input.Value <= 0 || input.Value > 100 {
			return nil, ErrInvalidValue
		}
	case KindFixed:
		if input.Value <= 0 {
			return nil, ErrInvalidValue
		}
	case KindFreeShipping:
		// Value unused.
	default:
		return nil, ErrInvalidKind
	}

	return s.repo.Create(ctx, input)
}

func (s *service) UpdateCode(ctx context.Context, params UpdatePromoParams) (*PromoCode, error) {
	return s.repo.Update(ctx, params)
}

func (s *service) DeleteCode(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
