package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velvetrow/salon-backend/internal/auth"
	"github.com/velvetrow/salon-backend/internal/user"
)

// RequireRole ensures the authenticated identity carries one of the given
// roles. It MUST be used after auth.AuthRequired middleware.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		for _, role := range roles {
			if identity.Role == string(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
	}
}

// RequireAdmin restricts the route to admin accounts.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleAdmin)
}
