package checkout

import (
	"context"
	"errors"
	"time"

	"craftviet-be/internal/address"
	"craftviet-be/internal/cart"
	"craftviet-be/internal/logger"
	"craftviet-be/internal/metrics"
	"craftviet-be/internal/order"
	"craftviet-be/internal/payment"
	"craftviet-be/internal/promo"
	"craftviet-be/internal/shipping"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service drives the five-step checkout flow. All state lives in the
// session store; the client only ever sends selections, never prices.
type Service interface {
	Start(ctx context.Context, userID uint) (*Session, error)
	Get(ctx context.Context, userID uint) (*Session, error)

	SelectAddress(ctx context.Context, userID uint, addressID uuid.UUID) (*Session, error)
	SelectShipping(ctx context.Context, userID uint, methodID string) (*Session, error)
	SelectPayment(ctx context.Context, userID uint, method string) (*Session, error)
	ApplyPromo(ctx context.Context, userID uint, code string) (*Session, error)
	RemovePromo(ctx context.Context, userID uint) (*Session, error)

	Next(ctx context.Context, userID uint) (*Session, error)
	Back(ctx context.Context, userID uint) (*Session, error)

	Confirm(ctx context.Context, userID uint) (*order.Order, error)
}

type service struct {
	store       SessionStore
	quoter      Quoter
	cartSvc     cart.Service
	addressSvc  address.Service
	shippingSvc shipping.Service
	promoSvc    promo.Service
	orderSvc    order.Service
}

func NewService(
	store SessionStore,
	quoter Quoter,
	cartSvc cart.Service,
	addressSvc address.Service,
	shippingSvc shipping.Service,
	promoSvc promo.Service,
	orderSvc order.Service,
) Service {
	return &service{
		store:       store,
		quoter:      quoter,
		cartSvc:     cartSvc,
		addressSvc:  addressSvc,
		shippingSvc: shippingSvc,
		promoSvc:    promoSvc,
		orderSvc:    orderSvc,
	}
}

// Start snapshots the cart into a fresh session. An existing session for
// the user is replaced.
func (s *service) Start(ctx context.Context, userID uint) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Checkout"),
		zap.String("method", "Start"),
		zap.Uint("user_id", userID),
	)

	items, err := s.cartSvc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      StepCart,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	for _, it := range items {
		sess.Items = append(sess.Items, SessionItem{
			ProductID:     it.ProductID,
			Name:          it.ProductName,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			SelectedColor: it.SelectedColor,
			SelectedSize:  it.SelectedSize,
		})
	}

	if err := s.reprice(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	log.Info("checkout started",
		zap.String("session_id", sess.ID.String()),
		zap.Int("items", len(sess.Items)),
	)
	return sess, nil
}

func (s *service) Get(ctx context.Context, userID uint) (*Session, error) {
	return s.load(ctx, userID)
}

func (s *service) load(ctx context.Context, userID uint) (*Session, error) {
	sess, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	// The store TTL usually handles this; the check covers clock skew.
	if sess.Expired(time.Now()) {
		_ = s.store.Delete(ctx, userID)
		return nil, ErrSessionExpired
	}
	return sess, nil
}

func (s *service) SelectAddress(ctx context.Context, userID uint, addressID uuid.UUID) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step < StepAddress {
		return nil, ErrWrongStep
	}

	if _, err := s.addressSvc.Get(ctx, addressID); err != nil {
		return nil, ErrAddressNotFound
	}

	sess.AddressID = &addressID
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) SelectShipping(ctx context.Context, userID uint, methodID string) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step < StepShipping {
		return nil, ErrWrongStep
	}

	if _, err := s.shippingSvc.GetMethod(ctx, methodID); err != nil {
		return nil, err
	}

	sess.ShippingMethodID = &methodID
	if err := s.reprice(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) SelectPayment(ctx context.Context, userID uint, method string) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step < StepPayment {
		return nil, ErrWrongStep
	}

	if !payment.IsValidMethod(method) {
		return nil, ErrInvalidPayment
	}

	sess.PaymentMethod = &method
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) ApplyPromo(ctx context.Context, userID uint, code string) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := s.subtotal(sess)
	shippingCost, err := s.shippingCost(ctx, sess)
	if err != nil {
		return nil, err
	}

	d, err := s.promoSvc.Evaluate(ctx, code, subtotal, shippingCost)
	if err != nil {
		return nil, err
	}

	sess.PromoCode = &d.Code
	if err := s.reprice(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) RemovePromo(ctx context.Context, userID uint) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess.PromoCode = nil
	if err := s.reprice(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Next advances one step if the current step's guard is satisfied. Every
// forward transition recomputes pricing, so a promo that expired while the
// buyer lingered drops off before the next screen shows it.
func (s *service) Next(ctx context.Context, userID uint) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step >= StepConfirmation {
		return nil, ErrWrongStep
	}
	if !sess.CanAdvance() {
		return nil, ErrStepGuard
	}

	sess.Step++
	if err := s.reprice(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Back steps one position towards the cart. Selections survive, so moving
// forward again does not re-ask answered questions.
func (s *service) Back(ctx context.Context, userID uint) (*Session, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step <= StepCart {
		return nil, ErrAlreadyAtFirst
	}

	sess.Step--
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Confirm turns the session into an order, then deletes the session so a
// double submit finds nothing to confirm.
func (s *service) Confirm(ctx context.Context, userID uint) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Checkout"),
		zap.String("method", "Confirm"),
		zap.Uint("user_id", userID),
	)

	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepConfirmation {
		return nil, ErrNotAtConfirmation
	}
	if sess.AddressID == nil || sess.ShippingMethodID == nil || sess.PaymentMethod == nil {
		return nil, ErrStepGuard
	}

	// Final authoritative pricing pass before money is committed.
	if err := s.reprice(ctx, sess); err != nil {
		return nil, err
	}

	addr, err := s.addressSvc.Get(ctx, *sess.AddressID)
	if err != nil {
		return nil, ErrAddressNotFound
	}
	method, err := s.shippingSvc.GetMethod(ctx, *sess.ShippingMethodID)
	if err != nil {
		return nil, err
	}

	params := order.CreateParams{
		UserID: userID,
		ShippingAddress: order.AddressSnapshot{
			FullName:   addr.FullName,
			Phone:      addr.Phone,
			Email:      addr.Email,
			Street:     addr.Street,
			City:       addr.City,
			Province:   addr.Province,
			PostalCode: addr.PostalCode,
		},
		ShippingMethodID:   method.ID,
		ShippingMethodName: method.Name,
		PaymentMethod:      *sess.PaymentMethod,
		PromoCode:          sess.PromoCode,
		Subtotal:           sess.Pricing.Subtotal,
		ShippingCost:       sess.Pricing.ShippingCost,
		Discount:           sess.Pricing.Discount,
		Total:              sess.Pricing.Total,
	}
	for _, it := range sess.Items {
		params.Items = append(params.Items, order.Item{
			ProductID:     it.ProductID,
			Name:          it.Name,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			SelectedColor: it.SelectedColor,
			SelectedSize:  it.SelectedSize,
		})
	}

	o, err := s.orderSvc.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	if sess.PromoCode != nil {
		if err := s.promoSvc.RecordUsage(ctx, *sess.PromoCode); err != nil {
			log.Warn("failed to record promo usage", zap.Error(err))
		}
	}
	if err := s.cartSvc.ClearCart(ctx, userID); err != nil {
		log.Warn("failed to clear cart", zap.Error(err))
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		log.Warn("failed to delete session", zap.Error(err))
	}

	log.Info("checkout confirmed",
		zap.String("order_number", o.OrderNumber),
		zap.Int("total", o.Total),
	)
	return o, nil
}

func (s *service) subtotal(sess *Session) int {
	total := 0
	for _, it := range sess.Items {
		total += it.LineSubtotal()
	}
	return total
}

func (s *service) shippingCost(ctx context.Context, sess *Session) (int, error) {
	if sess.ShippingMethodID == nil {
		return 0, nil
	}
	m, err := s.shippingSvc.GetMethod(ctx, *sess.ShippingMethodID)
	if err != nil {
		return 0, err
	}
	return m.Price, nil
}

// reprice recomputes the whole Pricing block from the session's selections.
// A promo that no longer evaluates (shipping changed under a minimum, code
// expired mid-session) is silently dropped.
func (s *service) reprice(ctx context.Context, sess *Session) error {
	subtotal := s.subtotal(sess)
	shippingCost, err := s.shippingCost(ctx, sess)
	if err != nil {
		return err
	}

	discount := 0
	freeShipping := false
	if sess.PromoCode != nil {
		d, err := s.promoSvc.Evaluate(ctx, *sess.PromoCode, subtotal, shippingCost)
		switch {
		case errors.Is(err, promo.ErrInvalidCode):
			sess.PromoCode = nil
		case err != nil:
			return err
		default:
			discount = d.Amount
			freeShipping = d.FreeShipping
		}
	}

	sess.Pricing = Pricing{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Discount:     discount,
		FreeShipping: freeShipping,
		Total:        s.quoteTotal(ctx, QuoteInput{Subtotal: subtotal, ShippingCost: shippingCost, Discount: discount}),
	}
	return nil
}

// quoteTotal asks the remote pricing service for the total and falls back
// to the local formula when it is unreachable. The two are numerically
// identical, so the client never sees the difference; operators do, via
// the log marker and counter.
func (s *service) quoteTotal(ctx context.Context, input QuoteInput) int {
	total, err := s.quoter.Quote(ctx, input)
	if err != nil {
		logger.FromCtx(ctx).Warn("pricing_fallback",
			zap.Error(err),
			zap.Int("subtotal", input.Subtotal),
			zap.Int("shipping_cost", input.ShippingCost),
			zap.Int("discount", input.Discount),
		)
		metrics.Default.PricingFallback.Inc()
		return LocalQuote(input)
	}
	return total
}
