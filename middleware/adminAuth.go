package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"fixel/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the static admin key for CRUD endpoints.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminKey := config.AppConfig.AdminKey
		if adminKey == "" || subtle.ConstantTimeCompare([]byte(tokenString), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
