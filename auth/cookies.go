package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aleee071/novashop-app/config"
)

// SetSessionCookies attaches the token pair as httpOnly cookies.
func SetSessionCookies(c *gin.Context, cfg config.JWTConfig, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessCookie, accessToken, int(cfg.AccessTTL.Seconds()), "/", "", false, true)
	c.SetCookie(RefreshCookie, refreshToken, int(cfg.RefreshTTL.Seconds()), "/", "", false, true)
}

func ClearSessionCookies(c *gin.Context) {
	c.SetCookie(AccessCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshCookie, "", -1, "/", "", false, true)
}
