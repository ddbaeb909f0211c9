package httpapi

import (
	"net/http"

	"craftviet-be/internal/address"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addressRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Email        *string `json:"email,omitempty"`
	Street       string  `json:"street" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Province     string  `json:"province" binding:"required"`
	PostalCode   *string `json:"postal_code,omitempty"`
	SetAsDefault bool    `json:"set_as_default"`
}

func handleListAddresses(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		addresses, err := deps.Address.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses})
	}
}

func handleCreateAddress(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		addr, err := deps.Address.Create(c.Request.Context(), address.CreateAddressInput{
			FullName:     req.FullName,
			Phone:        req.Phone,
			Email:        req.Email,
			Street:       req.Street,
			City:         req.City,
			Province:     req.Province,
			PostalCode:   req.PostalCode,
			SetAsDefault: req.SetAsDefault,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, addr)
	}
}

func handleUpdateAddress(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		addr, err := deps.Address.Update(c.Request.Context(), address.UpdateAddressInput{
			AddressID:    c.Param("id"),
			FullName:     req.FullName,
			Phone:        req.Phone,
			Email:        req.Email,
			Street:       req.Street,
			City:         req.City,
			Province:     req.Province,
			PostalCode:   req.PostalCode,
			SetAsDefault: req.SetAsDefault,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, addr)
	}
}

func parseUUIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func handleDeleteAddress(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		if err := deps.Address.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleSetDefaultAddress(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		if err := deps.Address.SetDefaultAddress(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
