package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fixel/services/auth"
	"fixel/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const authCacheTTL = time.Hour

// AuthUserMiddleware gates user-scoped endpoints. Verified tokens are
// cached in Redis against their hash so repeat requests skip the
// profile lookup; the cache is an optimization only and a miss (or an
// unreachable Redis) falls back to the guard.
func AuthUserMiddleware(guard *auth.Guard) gin.HandlerFunc {
	return principalMiddleware(guard.VerifyUser, "userID", "user")
}

// AuthTechnicianMiddleware gates technician-scoped endpoints.
func AuthTechnicianMiddleware(guard *auth.Guard) gin.HandlerFunc {
	return principalMiddleware(guard.VerifyTechnician, "technicianID", "technician")
}

func principalMiddleware(verify func(context.Context, string) (string, error), ctxKey, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		cacheKey := utils.AuthCachePrefix + role + ":" + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				zap.L().Warn("failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set(ctxKey, cached)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			zap.L().Warn("auth cache unavailable, falling back to guard", zap.Error(err))
		}

		principalID, err := verify(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(utils.StatusForError(err), gin.H{"error": err.Error()})
			return
		}

		if err := authCache.Set(ctx, cacheKey, principalID, authCacheTTL).Err(); err != nil {
			zap.L().Warn("failed to populate auth cache", zap.Error(err))
		}

		c.Set(ctxKey, principalID)
		c.Next()
	}
}
