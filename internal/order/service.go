package order

import (
	"context"
	"strings"

	"craftviet-be/internal/logger"
	"craftviet-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for orders.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Order, error)
	Get(ctx context.Context, id uuid.UUID, userID uint, isAdmin bool) (*Order, error)
	ListMine(ctx context.Context, userID uint, filter ListFilter) ([]*Order, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Order, error)

	// UpdateStatus is the admin console path. Moving to CANCELLED
	// requires a note explaining why.
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus Status, note *string) (*Order, error)

	// Cancel is the customer path: own orders, while still pending.
	Cancel(ctx context.Context, id uuid.UUID, userID uint, reason string) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "Create"),
		zap.Uint("user_id", params.UserID),
	)

	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}
	// Free-shipping promos discount the shipping line, so the cap is the
	// whole pre-discount value, not just the subtotal.
	if params.Discount > params.Subtotal+params.ShippingCost {
		return nil, ErrDiscountTooLarge
	}
	if params.Total != params.Subtotal+params.ShippingCost-params.Discount {
		return nil, ErrTotalMismatch
	}

	o := &Order{
		ID:                 uuid.New(),
		OrderNumber:        utils.GenerateOrderNumber(),
		UserID:             params.UserID,
		Items:              params.Items,
		ShippingAddress:    params.ShippingAddress,
		ShippingMethodID:   params.ShippingMethodID,
		ShippingMethodName: params.ShippingMethodName,
		PaymentMethod:      params.PaymentMethod,
		PromoCode:          params.PromoCode,
		Subtotal:           params.Subtotal,
		ShippingCost:       params.ShippingCost,
		Discount:           params.Discount,
		Total:              params.Total,
		Status:             StatusPending,
	}
	for i := range o.Items {
		o.Items[i].ID = uuid.New().String()
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("create order failed", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_number", o.OrderNumber),
		zap.Int("total", o.Total),
	)
	return o, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID, userID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		// Not-found rather than forbidden: don't leak other users' order ids.
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) ListMine(ctx context.Context, userID uint, filter ListFilter) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}

func (s *service) ListAll(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListAll(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus Status, note *string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", id.String()),
		zap.String("new_status", string(newStatus)),
	)

	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}
	if newStatus == StatusCancelled && (note == nil || strings.TrimSpace(*note) == "") {
		return nil, ErrReasonRequired
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(newStatus) {
		log.Warn("transition rejected", zap.String("current", string(o.Status)))
		return nil, ErrInvalidTransition
	}

	if err := s.repo.AppendStatus(ctx, id, newStatus, note); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id uuid.UUID, userID uint, reason string) (*Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	// Customers can only back out before the shop starts working the order.
	if o.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.AppendStatus(ctx, id, StatusCancelled, &reason); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
