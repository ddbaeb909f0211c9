package httpapi

import (
	"net/http"

	"craftviet-be/internal/review"
	"craftviet-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type createReviewRequest struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Comment string   `json:"comment" binding:"required"`
	Images  []string `json:"images"`
}

func handleCreateReview(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		ctx := c.Request.Context()
		userID, _ := utils.GetUserIDFromContext(ctx)

		// The display name on the review comes from the profile, not the
		// request body.
		u, err := deps.User.Profile(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		rev, err := deps.Review.Create(ctx, review.CreateInput{
			ProductID: c.Param("id"),
			UserID:    userID,
			UserName:  u.FullName,
			Rating:    req.Rating,
			Comment:   req.Comment,
			Images:    req.Images,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rev)
	}
}

func handleReviewVote(deps Deps, helpful bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c)
		if !ok {
			return
		}
		if err := deps.Review.Vote(c.Request.Context(), id, helpful); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
