package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"craftviet-be/internal/order"
	"craftviet-be/internal/product"
	"craftviet-be/internal/promo"
	"craftviet-be/internal/review"
	"craftviet-be/internal/shipping"
	"craftviet-be/internal/user"

	"github.com/gin-gonic/gin"
)

// ---- users ----

func handleAdminListUsers(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := deps.User.ListUsers(c.Request.Context(), queryInt(c, "limit", 20), queryInt(c, "page", 1))
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]userResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toUserResponse(u))
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}

func paramUint(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(n), true
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func handleAdminChangeRole(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramUint(c)
		if !ok {
			return
		}
		var req changeRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if err := deps.User.ChangeRole(c.Request.Context(), id, user.Role(req.Role)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleAdminDeactivateUser(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramUint(c)
		if !ok {
			return
		}
		if err := deps.User.Deactivate(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ---- products ----

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description,omitempty"`
	Price       int      `json:"price" binding:"required,min=0"`
	Images      []string `json:"images"`
	Category    string   `json:"category" binding:"required"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock" binding:"min=0"`
}

func handleAdminCreateProduct(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		p, err := deps.Product.Create(c.Request.Context(), product.NewProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Images:      req.Images,
			Category:    req.Category,
			Colors:      req.Colors,
			Sizes:       req.Sizes,
			Stock:       req.Stock,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *int     `json:"price,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

func handleAdminUpdateProduct(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		p, err := deps.Product.Update(c.Request.Context(), product.UpdateProductParams{
			ProductID:   c.Param("id"),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Images:      req.Images,
			Category:    req.Category,
			Colors:      req.Colors,
			Sizes:       req.Sizes,
			Stock:       req.Stock,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func handleAdminDeleteProduct(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Product.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ---- promo codes ----

type createPromoRequest struct {
	Code               string     `json:"code" binding:"required"`
	Kind               promo.Kind `json:"kind" binding:"required"`
	Value              int        `json:"value"`
	MinimumOrderAmount int        `json:"minimum_order_amount" binding:"min=0"`
	MaxDiscount        *int       `json:"max_discount,omitempty"`
	StartDate          time.Time  `json:"start_date" binding:"required"`
	EndDate            time.Time  `json:"end_date" binding:"required"`
}

func handleAdminListPromos(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes, err := deps.Promo.ListCodes(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promo_codes": codes})
	}
}

func handleAdminCreatePromo(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		pc, err := deps.Promo.CreateCode(c.Request.Context(), promo.NewPromoInput{
			Code:               req.Code,
			Kind:               req.Kind,
			Value:              req.Value,
			MinimumOrderAmount: req.MinimumOrderAmount,
			MaxDiscount:        req.MaxDiscount,
			StartDate:          req.StartDate,
			EndDate:            req.EndDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, pc)
	}
}

type updatePromoRequest struct {
	Value              *int       `json:"value,omitempty"`
	MinimumOrderAmount *int       `json:"minimum_order_amount,omitempty"`
	MaxDiscount        *int       `json:"max_discount,omitempty"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	IsActive           *bool      `json:"is_active,omitempty"`
}

func handleAdminUpdatePromo(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		pc, err := deps.Promo.UpdateCode(c.Request.Context(), promo.UpdatePromoParams{
			PromoID:            c.Param("id"),
			Value:              req.Value,
			MinimumOrderAmount: req.MinimumOrderAmount,
			MaxDiscount:        req.MaxDiscount,
			StartDate:          req.StartDate,
			EndDate:            req.EndDate,
			IsActive:           req.IsActive,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pc)
	}
}

func handleAdminDeletePromo(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Promo.DeleteCode(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ---- shipping zones ----

type createZoneRequest struct {
	Name          string   `json:"name" binding:"required"`
	Provinces     []string `json:"provinces" binding:"required,min=1"`
	Fee           int      `json:"fee" binding:"min=0"`
	EstimatedDays int      `json:"estimated_days" binding:"min=0"`
}

func handleAdminListZones(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		zones, err := deps.Shipping.ListZones(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"zones": zones})
	}
}

func handleAdminCreateZone(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createZoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		z, err := deps.Shipping.CreateZone(c.Request.Context(), shipping.NewZoneInput{
			Name:          req.Name,
			Provinces:     req.Provinces,
			Fee:           req.Fee,
			EstimatedDays: req.EstimatedDays,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, z)
	}
}

type updateZoneRequest struct {
	Name          *string  `json:"name,omitempty"`
	Provinces     []string `json:"provinces,omitempty"`
	Fee           *int     `json:"fee,omitempty"`
	EstimatedDays *int     `json:"estimated_days,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func handleAdminUpdateZone(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateZoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		z, err := deps.Shipping.UpdateZone(c.Request.Context(), shipping.UpdateZoneParams{
			ZoneID:        c.Param("id"),
			Name:          req.Name,
			Provinces:     req.Provinces,
			Fee:           req.Fee,
			EstimatedDays: req.EstimatedDays,
			IsActive:      req.IsActive,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, z)
	}
}

func handleAdminDeleteZone(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		if err := deps.Shipping.DeleteZone(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ---- orders ----

func handleAdminListOrders(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := deps.Order.ListAll(c.Request.Context(), orderFilter(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

type updateOrderStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
	Note   *string      `json:"note,omitempty"`
}

func handleAdminUpdateOrderStatus(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		o, err := deps.Order.UpdateStatus(c.Request.Context(), id, req.Status, req.Note)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// ---- reviews ----

func handleAdminListReviews(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := review.ListFilter{
			Limit: queryInt(c, "limit", 20),
			Page:  queryInt(c, "page", 1),
		}
		if raw := c.Query("status"); raw != "" {
			status := review.Status(raw)
			if !status.IsValid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": review.ErrInvalidStatus.Error()})
				return
			}
			filter.Status = &status
		}
		if raw := c.Query("product_id"); raw != "" {
			filter.ProductID = &raw
		}

		reviews, err := deps.Review.ListAll(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

func handleAdminApproveReview(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		if err := deps.Review.Approve(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleAdminRejectReview(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		if err := deps.Review.Reject(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type replyReviewRequest struct {
	Reply string `json:"reply" binding:"required"`
}

func handleAdminReplyReview(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		var req replyReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if err := deps.Review.Reply(c.Request.Context(), id, req.Reply); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ---- dashboard ----

func handleAdminDashboard(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := deps.Dashboard.Summary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
