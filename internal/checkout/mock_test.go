package checkout

import (
	"context"
	"sync"

	"craftviet-be/internal/address"
	"craftviet-be/internal/cart"
	"craftviet-be/internal/order"
	"craftviet-be/internal/promo"
	"craftviet-be/internal/shipping"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memStore is an in-memory SessionStore for tests.
type memStore struct {
	mu       sync.Mutex
	sessions map[uint]*Session
}

func newMemStore() *memStore {
	return &memStore{sessions: map[uint]*Session{}}
}

func (m *memStore) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.UserID] = &cp
	return nil
}

func (m *memStore) Get(ctx context.Context, userID uint) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) Delete(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

// MockCartService is a mock implementation of cart.Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID uint) ([]*cart.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartService) AddToCart(ctx context.Context, params cart.AddParams) (*cart.Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, params cart.UpdateParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, userID uint, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

// MockAddressService is a mock implementation of address.Service
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) List(ctx context.Context) ([]*address.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.Address), args.Error(1)
}

func (m *MockAddressService) Get(ctx context.Context, addressID uuid.UUID) (*address.Address, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressService) Create(ctx context.Context, input address.CreateAddressInput) (*address.Address, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressService) Update(ctx context.Context, input address.UpdateAddressInput) (*address.Address, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressService) Delete(ctx context.Context, addressID uuid.UUID) error {
	return m.Called(ctx, addressID).Error(0)
}

func (m *MockAddressService) SetDefaultAddress(ctx context.Context, addressID uuid.UUID) error {
	return m.Called(ctx, addressID).Error(0)
}

// MockShippingService is a mock implementation of shipping.Service
type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) ListMethods(ctx context.Context) ([]*shipping.Method, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipping.Method), args.Error(1)
}

func (m *MockShippingService) GetMethod(ctx context.Context, id string) (*shipping.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Method), args.Error(1)
}

func (m *MockShippingService) ListZones(ctx context.Context) ([]*shipping.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipping.Zone), args.Error(1)
}

func (m *MockShippingService) CreateZone(ctx context.Context, input shipping.NewZoneInput) (*shipping.Zone, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Zone), args.Error(1)
}

func (m *MockShippingService) UpdateZone(ctx context.Context, params shipping.UpdateZoneParams) (*shipping.Zone, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Zone), args.Error(1)
}

func (m *MockShippingService) DeleteZone(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPromoService is a mock implementation of promo.Service
type MockPromoService struct {
	mock.Mock
}

func (m *MockPromoService) Evaluate(ctx context.Context, code string, subtotal, shippingCost int) (*promo.Discount, error) {
	args := m.Called(ctx, code, subtotal, shippingCost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.Discount), args.Error(1)
}

func (m *MockPromoService) RecordUsage(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockPromoService) ListCodes(ctx context.Context) ([]*promo.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promo.PromoCode), args.Error(1)
}

func (m *MockPromoService) CreateCode(ctx context.Context, input promo.NewPromoInput) (*promo.PromoCode, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.PromoCode), args.Error(1)
}

func (m *MockPromoService) UpdateCode(ctx context.Context, params promo.UpdatePromoParams) (*promo.PromoCode, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.PromoCode), args.Error(1)
}

func (m *MockPromoService) DeleteCode(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderService is a mock implementation of order.Service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, params order.CreateParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id uuid.UUID, userID uint, isAdmin bool) (*order.Order, error) {
	args := m.Called(ctx, id, userID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListMine(ctx context.Context, userID uint, filter order.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus order.Status, note *string) (*order.Order, error) {
	args := m.Called(ctx, id, newStatus, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, id uuid.UUID, userID uint, reason string) (*order.Order, error) {
	args := m.Called(ctx, id, userID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// localQuoter always succeeds with the in-process formula.
type localQuoter struct{}

func (localQuoter) Quote(ctx context.Context, input QuoteInput) (int, error) {
	return LocalQuote(input), nil
}

// failingQuoter simulates an unreachable pricing service.
type failingQuoter struct{ err error }

func (q failingQuoter) Quote(ctx context.Context, input QuoteInput) (int, error) {
	return 0, q.err
}

// countingQuoter tallies how often pricing is recomputed.
type countingQuoter struct{ calls int }

func (q *countingQuoter) Quote(ctx context.Context, input QuoteInput) (int, error) {
	q.calls++
	return LocalQuote(input), nil
}
