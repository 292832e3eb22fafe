package middleware

import (
	"net/http"
	"strings"

	"computerstore/config"
	"computerstore/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and checks the principal.
// An invalid or missing token is a 401; a valid token for any email
// other than the configured admin is a 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		splitToken := strings.Split(authHeader, "Bearer ")
		if len(splitToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(splitToken[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if claims.Email != config.GetEnv("ADMIN_EMAIL", "admin@gmail.com") {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
			c.Abort()
			return
		}

		// Set verified email in context
		c.Set("email", claims.Email)

		c.Next()
	}
}
