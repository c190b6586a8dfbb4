package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/jwt"
)

// Context keys set by Authenticate.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxRoles  = "roles"
)

// Authenticate validates the bearer token and stores the caller's
// identity on the request context.
func Authenticate(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := issuer.Parse(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Subject)
		c.Set(CtxRoles, claims.Roles)

		c.Next()
	}
}
