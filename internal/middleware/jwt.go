package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// ClaimsKey is the context key under which verified claims are stored
const ClaimsKey = "claims"

// JWTAuthMiddleware validates bearer tokens and attaches the verified claims
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}
		c.Set(ClaimsKey, claims) // Store verified claims in context
		c.Next()                 // Proceed to the next handler
	}
}
