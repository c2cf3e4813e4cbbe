package middleware

import (
	"net/http"

	"commerce_api/internal/model"
	"commerce_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware is the authorization stage. It requires that
// JWTAuthMiddleware already ran; missing claims indicate a misordered
// pipeline and are rejected as unauthenticated.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			utils.AbortError(c, http.StatusUnauthorized, "Access denied. No user information.")
			return
		}

		for _, role := range allowedRoles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		utils.AbortError(c, http.StatusForbidden, "You do not have permission to access this resource.")
	}
}

// AdminMiddleware restricts a route to Administrators
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
