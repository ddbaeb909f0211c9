package dashboard

import (
	"fmt"
	"testing"
	"time"

	"craftviet-be/internal/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hcm = time.FixedZone("ICT", 7*3600)

func mkOrder(total int, status order.Status, createdAt time.Time, items ...order.Item) *order.Order {
	return &order.Order{
		ID:        uuid.New(),
		Total:     total,
		Status:    status,
		CreatedAt: createdAt,
		Items:     items,
	}
}

func TestAggregate_EmptyOrderSet(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, hcm)
	s := Aggregate(nil, now, hcm)

	assert.Zero(t, s.TotalOrders)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AverageOrderValue, "AOV is zero, not a division error")
	assert.Empty(t, s.TopProducts)

	require.Len(t, s.Daily, 7)
	assert.Equal(t, "2026-08-22", s.Daily[0].Date)
	assert.Equal(t, "2026-08-28", s.Daily[6].Date)
}

func TestAggregate_Totals(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, hcm)
	orders := []*order.Order{
		mkOrder(330000, order.StatusPending, now),
		mkOrder(795000, order.StatusPaid, now),
		mkOrder(150000, order.StatusPending, now.AddDate(0, 0, -1)),
	}

	s := Aggregate(orders, now, hcm)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 1275000, s.TotalRevenue)
	assert.Equal(t, 425000, s.AverageOrderValue)
	assert.Equal(t, 2, s.PendingOrders)
}

func TestAggregate_RevenueIsSumOfTotals(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, hcm)
	var orders []*order.Order
	want := 0
	for i := 1; i <= 20; i++ {
		total := i * 10000
		want += total
		orders = append(orders, mkOrder(total, order.StatusPaid, now))
	}

	s := Aggregate(orders, now, hcm)
	assert.Equal(t, want, s.TotalRevenue)
	assert.Equal(t, want/20, s.AverageOrderValue)
}

func TestAggregate_TopProducts(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, hcm)

	// Seven products; p7 sells most units, p1 fewest.
	var orders []*order.Order
	for i := 1; i <= 7; i++ {
		orders = append(orders, mkOrder(0, order.StatusPaid, now, order.Item{
			ProductID: fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("Sản phẩm %d", i),
			UnitPrice: 10000,
			Quantity:  i,
		}))
	}

	s := Aggregate(orders, now, hcm)
	require.Len(t, s.TopProducts, 5, "only the top five make the cut")
	assert.Equal(t, "p7", s.TopProducts[0].ProductID)
	assert.Equal(t, 7, s.TopProducts[0].Units)
	assert.Equal(t, 70000, s.TopProducts[0].Revenue)
	assert.Equal(t, "p3", s.TopProducts[4].ProductID)

	// Units across multiple orders of the same product accumulate.
	orders = append(orders, mkOrder(0, order.StatusPaid, now, order.Item{
		ProductID: "p1", Name: "Sản phẩm 1", UnitPrice: 10000, Quantity: 10,
	}))
	s = Aggregate(orders, now, hcm)
	assert.Equal(t, "p1", s.TopProducts[0].ProductID)
	assert.Equal(t, 11, s.TopProducts[0].Units)
}

func TestAggregate_DailyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 30, 0, 0, hcm)

	orders := []*order.Order{
		mkOrder(100000, order.StatusPaid, time.Date(2026, 8, 28, 1, 0, 0, 0, hcm)),
		mkOrder(200000, order.StatusPaid, time.Date(2026, 8, 28, 22, 0, 0, 0, hcm)),
		mkOrder(300000, order.StatusPaid, time.Date(2026, 8, 22, 12, 0, 0, 0, hcm)),
		// Outside the window: ignored by the daily series.
		mkOrder(999999, order.StatusPaid, time.Date(2026, 8, 21, 12, 0, 0, 0, hcm)),
	}

	s := Aggregate(orders, now, hcm)
	require.Len(t, s.Daily, 7)

	assert.Equal(t, "2026-08-28", s.Daily[6].Date)
	assert.Equal(t, 2, s.Daily[6].OrderCount)
	assert.Equal(t, 300000, s.Daily[6].Revenue)

	assert.Equal(t, "2026-08-22", s.Daily[0].Date)
	assert.Equal(t, 1, s.Daily[0].OrderCount)

	// Empty days still appear.
	assert.Equal(t, 0, s.Daily[3].OrderCount)
}

func TestAggregate_BucketsUseLocalTime(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, hcm)

	// 18:00 UTC on the 27th is already the 28th in ICT (+7).
	o := mkOrder(100000, order.StatusPaid, time.Date(2026, 8, 27, 18, 0, 0, 0, time.UTC))

	s := Aggregate([]*order.Order{o}, now, hcm)
	assert.Equal(t, 1, s.Daily[6].OrderCount, "bucketed under 2026-08-28 local")
	assert.Equal(t, 0, s.Daily[5].OrderCount)
}
