package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
)

// GetProducts lists the active catalog for the storefront.
func GetProducts(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": products.ActiveProducts()})
	}
}

func GetProduct(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		p, ok := products.ProductByID(id)
		if !ok || !p.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": p})
	}
}

func GetCategories(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": products.ActiveCategories()})
	}
}
