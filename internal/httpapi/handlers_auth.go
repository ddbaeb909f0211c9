package httpapi

import (
	"net/http"
	"time"

	"craftviet-be/internal/user"
	"craftviet-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       uint    `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     string(u.Role),
	}
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, int((24 * time.Hour).Seconds()), "/", "", false, true)
}

func handleRegister(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		u, token, err := deps.User.Register(c.Request.Context(), user.RegisterInput{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		setAuthCookie(c, token)
		c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(u), "token": token})
	}
}

func handleLogin(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		u, token, err := deps.User.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		setAuthCookie(c, token)
		c.JSON(http.StatusOK, gin.H{"user": toUserResponse(u), "token": token})
	}
}

func handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("access_token", "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}

func handleProfile(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := deps.User.Profile(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserResponse(u))
	}
}

type updateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func handleUpdateProfile(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())
		u, err := deps.User.UpdateProfile(c.Request.Context(), user.UpdateProfileParams{
			UserID:   userID,
			FullName: req.FullName,
			Phone:    req.Phone,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toUserResponse(u))
	}
}
