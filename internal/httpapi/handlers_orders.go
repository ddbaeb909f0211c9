package httpapi

import (
	"net/http"

	"craftviet-be/internal/order"
	"craftviet-be/internal/user"
	"craftviet-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func orderFilter(c *gin.Context) order.ListFilter {
	f := order.ListFilter{
		Limit: queryInt(c, "limit", 20),
		Page:  queryInt(c, "page", 1),
	}
	if raw := c.Query("status"); raw != "" {
		status := order.Status(raw)
		f.Status = &status
	}
	return f
}

func isAdmin(c *gin.Context) bool {
	return utils.GetUserRoleFromContext(c.Request.Context()) == string(user.RoleAdmin)
}

func handleListOrders(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		orders, err := deps.Order.ListMine(c.Request.Context(), userID, orderFilter(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func handleGetOrder(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		o, err := deps.Order.Get(c.Request.Context(), id, userID, isAdmin(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

type cancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func handleCancelOrder(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}

		var req cancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		o, err := deps.Order.Cancel(c.Request.Context(), id, userID, req.Reason)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func handleOrderInvoice(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		o, err := deps.Order.Get(c.Request.Context(), id, userID, isAdmin(c))
		if err != nil {
			respondError(c, err)
			return
		}

		path, err := deps.Invoice.Generate(c.Request.Context(), o)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.File(path)
	}
}
