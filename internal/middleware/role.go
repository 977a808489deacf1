package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole checks that the authenticated user carries the required role.
// It must run after JWTAuth, which resolves the role from the database.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			respondWithError(c, http.StatusUnauthorized, "User not authenticated")
			return
		}

		userRole, ok := role.(string)
		if !ok || userRole != requiredRole {
			respondWithError(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Next()
	}
}
