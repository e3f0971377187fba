package middleware

import (
	"net/http"
	"strings"

	"bookday/utils"

	"github.com/gin-gonic/gin"
)

// ContextCreatorID is the gin context key carrying the authenticated
// creator's referral id.
const ContextCreatorID = "creatorID"

// CreatorAuthMiddleware protects creator dashboard endpoints. It expects a
// bearer token issued at login and stores the creator id on the context.
func CreatorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		creatorID, err := utils.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ContextCreatorID, creatorID)
		c.Next()
	}
}
