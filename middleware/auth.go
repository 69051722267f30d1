package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/auth"
	"github.com/Aleee071/novashop-app/config"
	"github.com/Aleee071/novashop-app/models"
	"github.com/Aleee071/novashop-app/response"
)

const identityKey = "identity"

// Identity is the minimal capability handed to the engines: who is calling and
// in which role. Engines never load User or Owner rows for authorization.
type Identity struct {
	ID   string
	Role models.Role
}

// ValidateToken authenticates the request from the access-token cookie, with
// the Authorization header as a fallback for non-browser clients.
func ValidateToken(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.AccessCookie)
		if err != nil || tokenString == "" {
			tokenString = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if tokenString == "" {
			response.Error(c, apperr.Unauthorized("authentication required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseAccessToken(cfg, tokenString)
		if err != nil {
			response.Error(c, apperr.Unauthorized("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{ID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity set by ValidateToken.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := val.(Identity)
	return id, ok
}
