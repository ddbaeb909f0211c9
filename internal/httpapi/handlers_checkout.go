package httpapi

import (
	"net/http"

	"craftviet-be/internal/payment"
	"craftviet-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func handleListShippingMethods(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		methods, err := deps.Shipping.ListMethods(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"methods": methods})
	}
}

func handleListPaymentMethods() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"methods": payment.Methods()})
	}
}

func handleStartCheckout(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.Start(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sess)
	}
}

func handleGetCheckout(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

type selectAddressRequest struct {
	AddressID string `json:"address_id" binding:"required"`
}

func handleSelectAddress(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		addrID, err := uuid.Parse(req.AddressID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.SelectAddress(c.Request.Context(), userID, addrID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

type selectShippingRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

func handleSelectShipping(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.SelectShipping(c.Request.Context(), userID, req.MethodID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

type selectPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

func handleSelectPayment(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.SelectPayment(c.Request.Context(), userID, req.Method)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

type applyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

func handleApplyPromo(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyPromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.ApplyPromo(c.Request.Context(), userID, req.Code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func handleRemovePromo(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.RemovePromo(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func handleCheckoutNext(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.Next(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func handleCheckoutBack(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		sess, err := deps.Checkout.Back(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func handleConfirmCheckout(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		o, err := deps.Checkout.Confirm(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}

		instructions := payment.InjectVariables(
			payment.GetInstructions(o.PaymentMethod),
			payment.InstructionVars{
				"amount":       utils.FormatVND(o.Total),
				"order_number": o.OrderNumber,
			},
		)
		c.JSON(http.StatusCreated, gin.H{
			"order":                o,
			"payment_instructions": instructions,
		})
	}
}
