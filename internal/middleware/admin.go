package middleware

import (
	"net/http" // HTTP status codes

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils" // Claims type

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware checks the role claim attached by JWTAuthMiddleware.
// It must run after JWTAuthMiddleware: a missing claim set is treated as
// unauthenticated, never as forbidden.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ClaimsKey) // Get claims from context
		// Check if claims exist in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}
		claims, ok := val.(*utils.Claims) // Assert claims type
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}
		// Check if the role claim is admin
		if claims.Role != "admin" {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "FORBIDDEN"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
