package httpapi

import (
	"errors"
	"net/http"

	"craftviet-be/internal/address"
	"craftviet-be/internal/cart"
	"craftviet-be/internal/checkout"
	"craftviet-be/internal/logger"
	"craftviet-be/internal/order"
	"craftviet-be/internal/product"
	"craftviet-be/internal/promo"
	"craftviet-be/internal/review"
	"craftviet-be/internal/shipping"
	"craftviet-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var statusByErr = map[error]int{
	// Not found
	product.ErrProductNotFound:  http.StatusNotFound,
	cart.ErrProductNotFound:     http.StatusNotFound,
	cart.ErrCartItemNotFound:    http.StatusNotFound,
	address.ErrNotFound:         http.StatusNotFound,
	order.ErrOrderNotFound:      http.StatusNotFound,
	review.ErrReviewNotFound:    http.StatusNotFound,
	shipping.ErrMethodNotFound:  http.StatusNotFound,
	shipping.ErrZoneNotFound:    http.StatusNotFound,
	promo.ErrPromoNotFound:      http.StatusNotFound,
	user.ErrUserNotFound:        http.StatusNotFound,
	checkout.ErrSessionNotFound: http.StatusNotFound,

	// Bad request
	promo.ErrInvalidCode:        http.StatusBadRequest,
	promo.ErrInvalidKind:        http.StatusBadRequest,
	promo.ErrInvalidValue:       http.StatusBadRequest,
	promo.ErrNothingToUpdate:    http.StatusBadRequest,
	cart.ErrInvalidQuantity:     http.StatusBadRequest,
	product.ErrInvalidPrice:     http.StatusBadRequest,
	product.ErrNothingToUpdate:  http.StatusBadRequest,
	shipping.ErrInvalidFee:      http.StatusBadRequest,
	shipping.ErrNothingToUpdate: http.StatusBadRequest,
	address.ErrInvalidID:        http.StatusBadRequest,
	order.ErrReasonRequired:     http.StatusBadRequest,
	order.ErrInvalidStatus:      http.StatusBadRequest,
	review.ErrInvalidRating:     http.StatusBadRequest,
	review.ErrEmptyComment:      http.StatusBadRequest,
	review.ErrEmptyReply:        http.StatusBadRequest,
	user.ErrInvalidRole:         http.StatusBadRequest,
	user.ErrNothingToUpdate:     http.StatusBadRequest,
	checkout.ErrEmptyCart:       http.StatusBadRequest,
	checkout.ErrInvalidPayment:  http.StatusBadRequest,
	checkout.ErrAddressNotFound: http.StatusBadRequest,

	// Unauthorized / forbidden
	user.ErrInvalidCredentials: http.StatusUnauthorized,
	user.ErrUserDisabled:       http.StatusForbidden,
	address.ErrUnauthenticated: http.StatusUnauthorized,
	order.ErrUnauthorized:      http.StatusForbidden,

	// Conflict
	user.ErrEmailExists:           http.StatusConflict,
	promo.ErrCodeExists:           http.StatusConflict,
	review.ErrAlreadyReviewed:     http.StatusConflict,
	cart.ErrInsufficientStock:     http.StatusConflict,
	order.ErrInsufficientStock:    http.StatusConflict,
	order.ErrInvalidTransition:    http.StatusConflict,
	checkout.ErrStepGuard:         http.StatusConflict,
	checkout.ErrWrongStep:         http.StatusConflict,
	checkout.ErrAlreadyAtFirst:    http.StatusConflict,
	checkout.ErrNotAtConfirmation: http.StatusConflict,

	// Gone
	checkout.ErrSessionExpired: http.StatusGone,
}

// respondError maps domain sentinels onto HTTP statuses. Anything unmapped
// is a 500 with a generic body; the detail goes to the log, not the client.
func respondError(c *gin.Context, err error) {
	for sentinel, status := range statusByErr {
		if errors.Is(err, sentinel) {
			c.JSON(status, gin.H{"error": sentinel.Error()})
			return
		}
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation failed",
		"details": err.Error(),
	})
}
