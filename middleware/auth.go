package middleware

import (
	"net/http"
	"strings"

	userRepo "fixify/database/repository/user"
	"fixify/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FirebaseAuthMiddleware verifies the Firebase ID token on the request,
// resolves the caller's profile and stashes it in the context. Verified
// tokens are cached in Redis, keyed by token hash, to skip repeated
// verification round trips.
func FirebaseAuthMiddleware(authClient *auth.Client, users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		var uid string
		if authCache != nil {
			cachedUID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedUID != "" {
				uid = cachedUID
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			} else if err != nil && err != redis.Nil {
				logger.Warn("auth cache lookup failed, falling back to verification", zap.Error(err))
			}
		}

		if uid == "" {
			token, err := authClient.VerifyIDToken(ctx, tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			uid = token.UID
			if authCache != nil {
				// TTL stays well under the ID token's own expiry.
				_ = authCache.Set(ctx, cacheKey, uid, utils.AuthCacheTTL).Err()
			}
		}

		profile, err := users.GetByID(ctx, uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Profile not found for token"})
			return
		}

		c.Set("userID", profile.ID)
		c.Set("role", string(profile.Role))
		c.Set("profile", profile)
		c.Next()
	}
}

// FirebaseTokenMiddleware verifies the ID token without requiring a stored
// profile. Used by the profile-creation route, which runs before one exists.
func FirebaseTokenMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := authClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", token.UID)
		c.Next()
	}
}
