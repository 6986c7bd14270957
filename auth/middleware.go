package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/gguatit/Today-s-horoscope/errors"
)

// Context keys under which the middleware stores the verified identity.
const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
)

// Middleware validates the Bearer token and injects the verified user
// identity into the request context for downstream handlers.
func Middleware(tokens TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.ErrMissingBearer.Error()})
			return
		}

		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.ErrInvalidToken.Error()})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RolesKey, claims.Roles)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user carries the role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(RolesKey)
		held, _ := roles.([]string)
		if !lo.Contains(held, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errors.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}
