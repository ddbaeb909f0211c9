package cart

import (
	"context"
	"testing"

	"craftviet-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetItems(ctx context.Context, userID uint) ([]*Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *MockRepository) GetItemByVariant(ctx context.Context, params AddParams) (*Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) CreateItem(ctx context.Context, params AddParams) (*Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) UpdateQuantity(ctx context.Context, userID uint, itemID string, quantity int) error {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Error(0)
}

func (m *MockRepository) RemoveItem(ctx context.Context, userID uint, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockProductRepository is a mock for the product repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string, onlyActive bool) (*product.Product, error) {
	args := m.Called(ctx, id, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, params product.UpdateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSubtotal(t *testing.T) {
	items := []*Item{
		{UnitPrice: 150000, Quantity: 2},
		{UnitPrice: 220000, Quantity: 1},
	}
	assert.Equal(t, 520000, Subtotal(items))
	assert.Equal(t, 0, Subtotal(nil))
}

func TestService_AddToCart_NewItem(t *testing.T) {
	repo := new(MockRepository)
	productRepo := new(MockProductRepository)
	svc := NewService(repo, productRepo)

	params := AddParams{UserID: 1, ProductID: "prod-1", Quantity: 2}

	productRepo.On("GetByID", mock.Anything, "prod-1", true).
		Return(&product.Product{ID: "prod-1", Stock: 5}, nil)
	repo.On("GetItemByVariant", mock.Anything, params).Return(nil, nil)
	repo.On("CreateItem", mock.Anything, params).
		Return(&Item{ID: "cart-1", Quantity: 2}, nil)

	it, err := svc.AddToCart(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "cart-1", it.ID)
	repo.AssertExpectations(t)
}

func TestService_AddToCart_MergesSameVariant(t *testing.T) {
	repo := new(MockRepository)
	productRepo := new(MockProductRepository)
	svc := NewService(repo, productRepo)

	color := "Đỏ"
	params := AddParams{UserID: 1, ProductID: "prod-1", Quantity: 2, SelectedColor: &color}

	productRepo.On("GetByID", mock.Anything, "prod-1", true).
		Return(&product.Product{ID: "prod-1", Stock: 10}, nil)
	repo.On("GetItemByVariant", mock.Anything, params).
		Return(&Item{ID: "cart-1", Quantity: 3, SelectedColor: &color}, nil)
	repo.On("UpdateQuantity", mock.Anything, uint(1), "cart-1", 5).Return(nil)

	it, err := svc.AddToCart(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 5, it.Quantity)
	repo.AssertExpectations(t)
}

func TestService_AddToCart_Stock(t *testing.T) {
	repo := new(MockRepository)
	productRepo := new(MockProductRepository)
	svc := NewService(repo, productRepo)

	params := AddParams{UserID: 1, ProductID: "prod-1", Quantity: 4}

	productRepo.On("GetByID", mock.Anything, "prod-1", true).
		Return(&product.Product{ID: "prod-1", Stock: 5}, nil)
	repo.On("GetItemByVariant", mock.Anything, params).
		Return(&Item{ID: "cart-1", Quantity: 3}, nil)

	_, err := svc.AddToCart(context.Background(), params)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestService_AddToCart_Validation(t *testing.T) {
	repo := new(MockRepository)
	productRepo := new(MockProductRepository)
	svc := NewService(repo, productRepo)

	_, err := svc.AddToCart(context.Background(), AddParams{UserID: 1, ProductID: "p", Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	productRepo.On("GetByID", mock.Anything, "ghost", true).
		Return(nil, product.ErrProductNotFound)
	_, err = svc.AddToCart(context.Background(), AddParams{UserID: 1, ProductID: "ghost", Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_UpdateQuantity_RemovesOnZero(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockProductRepository))

	repo.On("RemoveItem", mock.Anything, uint(1), "cart-1").Return(nil)

	err := svc.UpdateQuantity(context.Background(), UpdateParams{UserID: 1, ItemID: "cart-1", Quantity: 0})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_UpdateQuantity(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockProductRepository))

	repo.On("UpdateQuantity", mock.Anything, uint(1), "cart-1", 7).Return(nil)

	err := svc.UpdateQuantity(context.Background(), UpdateParams{UserID: 1, ItemID: "cart-1", Quantity: 7})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
