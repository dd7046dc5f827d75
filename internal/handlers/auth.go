package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/session"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(sessions *session.Manager, jwter *auth.JWTer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		sess, err := sessions.Register(req.Name, req.Email, req.Password, req.Phone)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, session.ErrEmailTaken) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		token, err := jwter.Issue(sess.ID, sess.Role)
		if err != nil {
			log.Error("register token generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Info("user registered", zap.String("email", sess.Email))
		c.JSON(http.StatusCreated, gin.H{"accessToken": token, "user": sess})
	}
}

func Login(sessions *session.Manager, jwter *auth.JWTer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		sess, err := sessions.Login(req.Email, req.Password)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, session.ErrDeactivated) {
				status = http.StatusForbidden
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		token, err := jwter.Issue(sess.ID, sess.Role)
		if err != nil {
			log.Error("login token generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Info("login succeeded", zap.String("email", sess.Email), zap.String("role", sess.Role))
		c.JSON(http.StatusOK, gin.H{"accessToken": token, "role": sess.Role, "user": sess})
	}
}

func Logout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// Me returns the active session, if one exists.
func Me(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}
