package middleware

import (
	"github.com/gin-gonic/gin"

	"bookstore-api/internal/shared/response"
)

// RoleAdministrator gates write access to Author records.
const RoleAdministrator = "Administrator"

// RequireRole rejects requests whose token does not carry the given role.
// Must run after Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesValue, exists := c.Get(CtxRoles)
		if !exists {
			response.Forbidden(c, "access denied: "+role+" role required")
			c.Abort()
			return
		}

		roles, ok := rolesValue.([]string)
		if !ok || !contains(roles, role) {
			response.Forbidden(c, "access denied: "+role+" role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
