package dashboard

import (
	"sort"
	"time"

	"craftviet-be/internal/order"
)

const topProductCount = 5

// Aggregate projects the order set into a Summary. Pure function: same
// orders and clock in, same summary out.
func Aggregate(orders []*order.Order, now time.Time, loc *time.Location) Summary {
	s := Summary{
		TotalOrders: len(orders),
	}

	sales := map[string]*ProductSales{}
	for _, o := range orders {
		s.TotalRevenue += o.Total
		if o.Status == order.StatusPending {
			s.PendingOrders++
		}
		for _, it := range o.Items {
			ps, ok := sales[it.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: it.ProductID, Name: it.Name}
				sales[it.ProductID] = ps
			}
			ps.Units += it.Quantity
			ps.Revenue += it.LineSubtotal()
		}
	}

	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / s.TotalOrders
	}

	ranked := make([]ProductSales, 0, len(sales))
	for _, ps := range sales {
		ranked = append(ranked, *ps)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Units != ranked[j].Units {
			return ranked[i].Units > ranked[j].Units
		}
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	if len(ranked) > topProductCount {
		ranked = ranked[:topProductCount]
	}
	s.TopProducts = ranked

	s.Daily = dailyBuckets(orders, now, loc)
	return s
}

// dailyBuckets returns the trailing 7 calendar days, oldest first, with
// every day present even when empty.
func dailyBuckets(orders []*order.Order, now time.Time, loc *time.Location) []DayBucket {
	today := now.In(loc)
	buckets := make([]DayBucket, 7)
	index := map[string]*DayBucket{}
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i-6).Format("2006-01-02")
		buckets[i] = DayBucket{Date: date}
		index[date] = &buckets[i]
	}

	for _, o := range orders {
		date := o.CreatedAt.In(loc).Format("2006-01-02")
		if b, ok := index[date]; ok {
			b.OrderCount++
			b.Revenue += o.Total
		}
	}
	return buckets
}
