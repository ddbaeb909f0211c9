package httpapi

import (
	"net/http"

	"craftviet-be/internal/address"
	"craftviet-be/internal/cart"
	"craftviet-be/internal/checkout"
	"craftviet-be/internal/dashboard"
	"craftviet-be/internal/invoice"
	"craftviet-be/internal/logger"
	"craftviet-be/internal/metrics"
	"craftviet-be/internal/middleware"
	"craftviet-be/internal/order"
	"craftviet-be/internal/product"
	"craftviet-be/internal/promo"
	"craftviet-be/internal/review"
	"craftviet-be/internal/shipping"
	"craftviet-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	User      user.Service
	Product   product.Service
	Cart      cart.Service
	Address   address.Service
	Shipping  shipping.Service
	Promo     promo.Service
	Checkout  checkout.Service
	Order     order.Service
	Review    review.Service
	Dashboard dashboard.Service
	Invoice   *invoice.Generator
}

// New builds the full route tree.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(countRequests())
	r.Use(middleware.Auth())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimit())

	// Public storefront.
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimitStrict())
	{
		auth.POST("/register", handleRegister(deps))
		auth.POST("/login", handleLogin(deps))
		auth.POST("/logout", handleLogout())
	}

	v1.GET("/products", handleListProducts(deps))
	v1.GET("/products/:id", handleGetProduct(deps))
	v1.GET("/products/:id/reviews", handleListProductReviews(deps))

	v1.GET("/shipping/methods", handleListShippingMethods(deps))
	v1.GET("/payment/methods", handleListPaymentMethods())

	// Authenticated storefront.
	me := v1.Group("")
	me.Use(middleware.RequireUser())
	{
		me.GET("/me", handleProfile(deps))
		me.PATCH("/me", handleUpdateProfile(deps))

		me.GET("/cart", handleGetCart(deps))
		me.POST("/cart/items", handleAddToCart(deps))
		me.PATCH("/cart/items/:id", handleUpdateCartItem(deps))
		me.DELETE("/cart/items/:id", handleRemoveCartItem(deps))
		me.DELETE("/cart", handleClearCart(deps))

		me.GET("/addresses", handleListAddresses(deps))
		me.POST("/addresses", handleCreateAddress(deps))
		me.PUT("/addresses/:id", handleUpdateAddress(deps))
		me.DELETE("/addresses/:id", handleDeleteAddress(deps))
		me.POST("/addresses/:id/default", handleSetDefaultAddress(deps))

		co := me.Group("/checkout")
		{
			co.POST("", handleStartCheckout(deps))
			co.GET("", handleGetCheckout(deps))
			co.POST("/address", handleSelectAddress(deps))
			co.POST("/shipping", handleSelectShipping(deps))
			co.POST("/payment", handleSelectPayment(deps))
			co.POST("/promo", handleApplyPromo(deps))
			co.DELETE("/promo", handleRemovePromo(deps))
			co.POST("/next", handleCheckoutNext(deps))
			co.POST("/back", handleCheckoutBack(deps))
			co.POST("/confirm", handleConfirmCheckout(deps))
		}

		me.GET("/orders", handleListOrders(deps))
		me.GET("/orders/:id", handleGetOrder(deps))
		me.POST("/orders/:id/cancel", handleCancelOrder(deps))
		me.GET("/orders/:id/invoice", handleOrderInvoice(deps))

		me.POST("/products/:id/reviews", handleCreateReview(deps))
		me.POST("/reviews/:id/helpful", handleReviewVote(deps, true))
		me.POST("/reviews/:id/not-helpful", handleReviewVote(deps, false))
	}

	// Admin console.
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", handleAdminListUsers(deps))
		admin.PATCH("/users/:id/role", handleAdminChangeRole(deps))
		admin.DELETE("/users/:id", handleAdminDeactivateUser(deps))

		admin.POST("/products", handleAdminCreateProduct(deps))
		admin.PATCH("/products/:id", handleAdminUpdateProduct(deps))
		admin.DELETE("/products/:id", handleAdminDeleteProduct(deps))

		admin.GET("/promos", handleAdminListPromos(deps))
		admin.POST("/promos", handleAdminCreatePromo(deps))
		admin.PATCH("/promos/:id", handleAdminUpdatePromo(deps))
		admin.DELETE("/promos/:id", handleAdminDeletePromo(deps))

		admin.GET("/shipping/zones", handleAdminListZones(deps))
		admin.POST("/shipping/zones", handleAdminCreateZone(deps))
		admin.PATCH("/shipping/zones/:id", handleAdminUpdateZone(deps))
		admin.DELETE("/shipping/zones/:id", handleAdminDeleteZone(deps))

		admin.GET("/orders", handleAdminListOrders(deps))
		admin.PATCH("/orders/:id/status", handleAdminUpdateOrderStatus(deps))

		admin.GET("/reviews", handleAdminListReviews(deps))
		admin.POST("/reviews/:id/approve", handleAdminApproveReview(deps))
		admin.POST("/reviews/:id/reject", handleAdminRejectReview(deps))
		admin.POST("/reviews/:id/reply", handleAdminReplyReview(deps))

		admin.GET("/metrics", handleAdminDashboard(deps))
		admin.GET("/metrics/http", func(c *gin.Context) {
			c.JSON(http.StatusOK, metrics.Default.Snapshot())
		})
	}

	return r
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.Default.Requests.Inc()
		c.Next()
		switch status := c.Writer.Status(); {
		case status >= 500:
			metrics.Default.ServerErrors.Inc()
		case status >= 400:
			metrics.Default.ClientErrors.Inc()
		}
	}
}
