package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/session"
)

type placeOrderRequest struct {
	AddressID string `json:"addressId"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func checkoutStatus(err error) int {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrNoAddress):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrNotUserSession):
		return http.StatusForbidden
	case errors.Is(err, checkout.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkout.ErrNotCancellable), errors.Is(err, checkout.ErrBadStatus):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CheckoutQuote prices the current cart without committing an order.
func CheckoutQuote(orders *checkout.Manager, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.Pricing().Quote(carts.Total()))
	}
}

func PlaceOrder(orders *checkout.Manager, sessions *session.Manager, carts *cart.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		sess, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		order, err := orders.PlaceOrder(sess, carts.Items(), strings.TrimSpace(req.AddressID), carts.Clear)
		if err != nil {
			c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
			return
		}

		log.Info("order placed",
			zap.String("orderId", order.ID),
			zap.String("userId", order.UserID),
			zap.Float64("total", order.Total))
		c.JSON(http.StatusCreated, gin.H{"data": order})
	}
}

func MyOrders(orders *checkout.Manager, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": orders.ForUser(sess.ID)})
	}
}

func CancelOrder(orders *checkout.Manager, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if err := orders.Cancel(sess.ID, strings.TrimSpace(c.Param("id"))); err != nil {
			c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
	}
}
