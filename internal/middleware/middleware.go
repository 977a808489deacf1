package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pizzashop/pizza-shop-api/internal/auth"
	"github.com/pizzashop/pizza-shop-api/internal/models"
	"github.com/pizzashop/pizza-shop-api/internal/services"
)

// JWTAuth validates the Bearer session token and resolves it to a live
// user record, attaching {id, email, role} to the request context.
//
// Status codes follow the observed contract: a missing token is 401, a
// token that fails signature or expiry checks is 403, and a token whose
// user no longer exists (e.g. deleted) is 401 again.
func JWTAuth(tokens *auth.TokenService, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondWithError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			respondWithError(c, http.StatusForbidden, "Invalid token")
			return
		}

		user, err := users.GetUserByID(userID)
		if err != nil {
			respondWithError(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("userRole", user.Role)
		c.Set("user", user)

		c.Next()
	}
}

// CurrentUser returns the user resolved by JWTAuth for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, models.NewAPIError(message))
	c.Abort()
}
