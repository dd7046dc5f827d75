package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/models"
)

type productRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice float64  `json:"originalPrice"`
	Category      string   `json:"category"`
	CategoryID    string   `json:"categoryId"`
	Images        []string `json:"images"`
	Stock         int      `json:"stock" binding:"gte=0"`
	IsActive      *bool    `json:"isActive"`
}

type categoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	IsActive *bool  `json:"isActive"`
}

func catalogStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func AdminListProducts(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": products.Products()})
	}
}

func AdminCreateProduct(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		active := true
		if req.IsActive != nil {
			active = *req.IsActive
		}
		saved, err := products.SaveProduct(models.Product{
			Name:          strings.TrimSpace(req.Name),
			Description:   strings.TrimSpace(req.Description),
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Category:      strings.TrimSpace(req.Category),
			CategoryID:    strings.TrimSpace(req.CategoryID),
			Images:        req.Images,
			Stock:         req.Stock,
			IsActive:      active,
		})
		if err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": saved})
	}
}

func AdminUpdateProduct(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		existing, ok := products.ProductByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		existing.Name = strings.TrimSpace(req.Name)
		existing.Description = strings.TrimSpace(req.Description)
		existing.Price = req.Price
		existing.OriginalPrice = req.OriginalPrice
		existing.Category = strings.TrimSpace(req.Category)
		existing.CategoryID = strings.TrimSpace(req.CategoryID)
		existing.Images = req.Images
		existing.Stock = req.Stock
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		saved, err := products.SaveProduct(existing)
		if err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": saved})
	}
}

func AdminDeleteProduct(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.DeleteProduct(strings.TrimSpace(c.Param("id"))); err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

func AdminToggleProduct(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, err := products.ToggleProductActive(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": saved})
	}
}

func AdminListCategories(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": products.Categories()})
	}
}

func AdminSaveCategory(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		active := true
		if req.IsActive != nil {
			active = *req.IsActive
		}
		saved, err := products.SaveCategory(models.Category{
			ID:       strings.TrimSpace(c.Param("id")),
			Name:     strings.TrimSpace(req.Name),
			Slug:     strings.TrimSpace(req.Slug),
			IsActive: active,
		})
		if err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": saved})
	}
}

func AdminDeleteCategory(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.DeleteCategory(strings.TrimSpace(c.Param("id"))); err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}

func AdminListUsers(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": products.Users()})
	}
}

func AdminToggleUser(products *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, err := products.ToggleUserActive(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": saved})
	}
}

func AdminListOrders(orders *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": orders.All()})
	}
}

func AdminUpdateOrderStatus(orders *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if err := orders.SetStatus(strings.TrimSpace(c.Param("id")), strings.TrimSpace(req.Status)); err != nil {
			c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "status updated"})
	}
}
