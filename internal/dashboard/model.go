package dashboard

// Summary is the admin dashboard projection, recomputed from the full
// order set on every call.
type Summary struct {
	TotalOrders       int `json:"total_orders"`
	TotalRevenue      int `json:"total_revenue"`
	AverageOrderValue int `json:"average_order_value"`
	PendingOrders     int `json:"pending_orders"`

	TopProducts []ProductSales `json:"top_products"`
	Daily       []DayBucket    `json:"daily"`
}

// ProductSales ranks a product by units sold.
type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
	Revenue   int    `json:"revenue"`
}

// DayBucket is one calendar day of the trailing week, local time.
type DayBucket struct {
	Date       string `json:"date"`
	OrderCount int    `json:"order_count"`
	Revenue    int    `json:"revenue"`
}
