package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const pinHeader = "X-Admin-Pin"

// RequirePIN gates the admin surface behind the shared-secret PIN. Plain
// string compare, no sessions, no rate limiting.
func RequirePIN(pin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pin == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access is not configured"})
			return
		}
		if c.GetHeader(pinHeader) != pin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid PIN"})
			return
		}
		c.Next()
	}
}
