package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

// RequireRole gates a route group to a single role. Runs after ValidateToken.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			response.Error(c, apperr.Unauthorized("authentication required"))
			c.Abort()
			return
		}
		if identity.Role != role {
			response.Error(c, apperr.Forbidden("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}
