package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/session"
)

type profileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type addressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

func profileStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNoUserSession):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrMissingFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func UpdateProfile(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		sess, err := sessions.UpdateProfile(session.ProfileUpdate{Name: req.Name, Phone: req.Phone})
		if err != nil {
			c.JSON(profileStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}

func GetAddresses(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": sess.Addresses})
	}
}

func CreateAddress(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		addr, err := sessions.AddAddress(req.Street, req.City, req.State, req.Pincode)
		if err != nil {
			c.JSON(profileStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"address": addr})
	}
}

func UpdateAddress(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
			return
		}

		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		addr, err := sessions.EditAddress(id, req.Street, req.City, req.State, req.Pincode)
		if err != nil {
			c.JSON(profileStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": addr})
	}
}

func DeleteAddress(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
			return
		}

		if err := sessions.DeleteAddress(id); err != nil {
			c.JSON(profileStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
	}
}
