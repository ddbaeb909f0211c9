package httpapi

import (
	"net/http"

	"craftviet-be/internal/cart"
	"craftviet-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID     string  `json:"product_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	SelectedColor *string `json:"selected_color,omitempty"`
	SelectedSize  *string `json:"selected_size,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func handleGetCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		items, err := deps.Cart.GetCart(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":    items,
			"subtotal": cart.Subtotal(items),
		})
	}
}

func handleAddToCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		item, err := deps.Cart.AddToCart(c.Request.Context(), cart.AddParams{
			UserID:        userID,
			ProductID:     req.ProductID,
			Quantity:      req.Quantity,
			SelectedColor: req.SelectedColor,
			SelectedSize:  req.SelectedSize,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func handleUpdateCartItem(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		err := deps.Cart.UpdateQuantity(c.Request.Context(), cart.UpdateParams{
			UserID:   userID,
			ItemID:   c.Param("id"),
			Quantity: req.Quantity,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleRemoveCartItem(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		if err := deps.Cart.RemoveFromCart(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleClearCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		if err := deps.Cart.ClearCart(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
