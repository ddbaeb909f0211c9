package httpapi

import (
	"net/http"
	"strconv"

	"craftviet-be/internal/product"

	"github.com/gin-gonic/gin"
)

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}

func handleListProducts(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := product.ListOptions{
			Search:     c.Query("search"),
			Category:   c.Query("category"),
			Sort:       c.Query("sort"),
			Limit:      queryInt(c, "limit", 20),
			Page:       queryInt(c, "page", 1),
			OnlyActive: true,
		}

		products, err := deps.Product.List(c.Request.Context(), opts)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func handleGetProduct(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := deps.Product.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func handleListProductReviews(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := deps.Review.ListForProduct(
			c.Request.Context(),
			c.Param("id"),
			queryInt(c, "limit", 20),
			queryInt(c, "page", 1),
		)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}
