package cookie

import (
	"net/http"
	"time"

	"neighbiz/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessPath = "/"
	// only refresh and logout read the refresh cookie
	refreshPath = "/api/auth"
)

// Tokens is a freshly issued pair with absolute expiries.
type Tokens struct {
	Access          string
	AccessExpiresAt time.Time

	Refresh          string
	RefreshExpiresAt time.Time
}

// SetTokenCookies writes both tokens as HttpOnly cookies whose max-age is measured from now.
func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, t Tokens, now time.Time) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, t.Access, maxAge(t.AccessExpiresAt, now), accessPath, cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, t.Refresh, maxAge(t.RefreshExpiresAt, now), refreshPath, cfg.Domain, cfg.Secure, true)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, accessPath, cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, refreshPath, cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// maxAge never returns 0, which would make the cookie a session cookie.
func maxAge(expiresAt, now time.Time) int {
	secs := int(expiresAt.Sub(now).Seconds())
	if secs <= 0 {
		return -1
	}
	return secs
}

func sameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
