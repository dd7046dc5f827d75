package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/currency"
)

type setCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

func GetCurrency(display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"currency": display.Code()})
	}
}

func SetCurrency(display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setCurrencyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if err := display.Set(req.Code); err != nil {
			if errors.Is(err, currency.ErrUnsupported) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save currency"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"currency": display.Code()})
	}
}

func ToggleCurrency(display *currency.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		display.Toggle()
		c.JSON(http.StatusOK, gin.H{"currency": display.Code()})
	}
}
