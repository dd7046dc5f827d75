package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
)

// AuthGuard validates the bearer token and, when roles are given, requires
// one of them. The claims' uid and role are injected into the context.
func AuthGuard(jwter *auth.JWTer, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, err := jwter.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if len(allowedRoles) > 0 {
			match := false
			for _, r := range allowedRoles {
				if claims.Role == r {
					match = true
					break
				}
			}
			if !match {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		c.Set("userId", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UserAuth guards routes that need a signed-in shopper.
func UserAuth(jwter *auth.JWTer) gin.HandlerFunc {
	return AuthGuard(jwter, "user")
}

// AdminAuth guards the admin console API.
func AdminAuth(jwter *auth.JWTer) gin.HandlerFunc {
	return AuthGuard(jwter, "admin")
}
