package middleware

import (
	"net/http"

	"fixify/models"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects callers whose profile role does not match. Must run
// after FirebaseAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions for this action",
			})
			return
		}
		c.Next()
	}
}
