package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/wishlist"
)

type wishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func GetWishlist(wishes *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": wishes.Items()})
	}
}

func AddToWishlist(wishes *wishlist.Manager, products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		product, ok := products.ProductByID(strings.TrimSpace(req.ProductID))
		if !ok || !product.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		wishes.Add(product)
		c.JSON(http.StatusOK, gin.H{"data": wishes.Items()})
	}
}

func RemoveFromWishlist(wishes *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishes.Remove(strings.TrimSpace(c.Param("id")))
		c.JSON(http.StatusOK, gin.H{"data": wishes.Items()})
	}
}

// MoveToWishlistCart moves one wishlist entry into the cart.
func MoveToWishlistCart(wishes *wishlist.Manager, carts *cart.Manager, products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		product, ok := products.ProductByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if !wishes.Contains(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not in wishlist"})
			return
		}

		if err := wishes.MoveToCart(product, carts.Add); err != nil {
			if errors.Is(err, cart.ErrOutOfStock) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not move to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": wishes.Items()})
	}
}
