package invoice

import (
	"context"
	"os"
	"testing"
	"time"

	"craftviet-be/internal/order"
	"craftviet-be/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *order.Order {
	return &order.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260828-100000-0001",
		UserID:      7,
		Items: []order.Item{
			{ProductID: "p1", Name: "Tranh sơn mài", UnitPrice: 850000, Quantity: 1,
				SelectedColor: utils.StrPtr("Đỏ")},
		},
		ShippingAddress: order.AddressSnapshot{
			FullName: "Nguyễn Văn A", Phone: "0901234567",
			Street: "12 Hàng Gai", City: "Hà Nội", Province: "Hà Nội",
		},
		ShippingMethodName: "Giao hàng tiêu chuẩn",
		PaymentMethod:      "COD",
		Subtotal:           850000,
		ShippingCost:       30000,
		Discount:           85000,
		Total:              795000,
		PromoCode:          utils.StrPtr("WELCOME10"),
		Status:             order.StatusPending,
		CreatedAt:          time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}
}

func TestGenerator_Generate(t *testing.T) {
	g, err := NewGenerator(t.TempDir(), "Craft Việt", "25 Hàng Bạc, Hoàn Kiếm, Hà Nội")
	require.NoError(t, err)

	o := sampleOrder()
	path, err := g.Generate(context.Background(), o)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "ORD-20260828-100000-0001")
	assert.Contains(t, html, "Craft Việt")
	assert.Contains(t, html, "Tranh sơn mài")
	assert.Contains(t, html, "Đỏ")
	assert.Contains(t, html, "850.000₫")
	assert.Contains(t, html, "795.000₫")
	assert.Contains(t, html, "WELCOME10")
}

func TestGenerator_NoDiscountLineWhenZero(t *testing.T) {
	g, err := NewGenerator(t.TempDir(), "Craft Việt", "25 Hàng Bạc, Hoàn Kiếm, Hà Nội")
	require.NoError(t, err)

	o := sampleOrder()
	o.Discount = 0
	o.PromoCode = nil
	o.Total = 880000

	path, err := g.Generate(context.Background(), o)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Giảm giá")
}

func TestGenerator_Deterministic(t *testing.T) {
	g, err := NewGenerator(t.TempDir(), "Craft Việt", "25 Hàng Bạc, Hoàn Kiếm, Hà Nội")
	require.NoError(t, err)

	o := sampleOrder()
	path1, err := g.Generate(context.Background(), o)
	require.NoError(t, err)
	first, err := os.ReadFile(path1)
	require.NoError(t, err)

	path2, err := g.Generate(context.Background(), o)
	require.NoError(t, err)
	second, err := os.ReadFile(path2)
	require.NoError(t, err)

	assert.Equal(t, path1, path2, "same order, same file")
	assert.Equal(t, first, second, "same order, same bytes")
}
