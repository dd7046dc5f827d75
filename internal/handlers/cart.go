package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/currency"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func cartView(carts *cart.Manager, display *currency.Manager) gin.H {
	total := carts.Total()
	return gin.H{
		"items":           carts.Items(),
		"total":           total,
		"count":           carts.Count(),
		"displayTotal":    display.Format(total),
		"displayCurrency": display.Code(),
	}
}

func GetCart(carts *cart.Manager, display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(carts, display))
	}
}

func AddToCart(carts *cart.Manager, products *catalog.Manager, display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		product, ok := products.ProductByID(strings.TrimSpace(req.ProductID))
		if !ok || !product.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		if err := carts.Add(product, req.Quantity); err != nil {
			if errors.Is(err, cart.ErrOutOfStock) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add to cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(carts, display))
	}
}

func UpdateCartItem(carts *cart.Manager, display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		carts.UpdateQuantity(id, req.Quantity)
		c.JSON(http.StatusOK, cartView(carts, display))
	}
}

func RemoveCartItem(carts *cart.Manager, display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Remove(strings.TrimSpace(c.Param("id")))
		c.JSON(http.StatusOK, cartView(carts, display))
	}
}
