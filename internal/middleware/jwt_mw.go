package middleware

import (
	"net/http"
	"strings"

	"commerce_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// AuthClaimsKey holds the decoded *utils.JWTClaims in the gin context
	AuthClaimsKey = "authClaims"

	// AuthCookieName is the session cookie; its value is "Bearer <token>"
	AuthCookieName = "Authorization"
)

// extractToken pulls the bearer token from the Authorization cookie, falling
// back to the Authorization header only when the cookie is absent.
func extractToken(c *gin.Context) string {
	raw, err := c.Cookie(AuthCookieName)
	if err != nil || raw == "" {
		raw = c.GetHeader("Authorization")
	}
	parts := strings.Split(raw, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// JWTAuthMiddleware is the authentication stage: a valid token attaches its
// claims to the request context, anything else short-circuits the chain.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.AbortError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			// Malformed, bad signature and expired all collapse to one message
			utils.AbortError(c, http.StatusForbidden, "Invalid or expired token.")
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims returns the claims attached by JWTAuthMiddleware
func GetAuthClaims(c *gin.Context) (*utils.JWTClaims, bool) {
	val, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*utils.JWTClaims)
	return claims, ok
}
