package handlers

import (
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/constants"
	"net/http"
	"time"
)

// 生产环境跨站部署前端，需要 Secure + SameSite=None
func (a *App) tokenCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.AuthTokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.isProd,
		SameSite: http.SameSiteLaxMode,
	}
	if a.isProd {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

func (a *App) setTokenCookie(c echo.Context, token string, expires time.Time) {
	cookie := a.tokenCookie(token, int(constants.AuthTokenDuration.Seconds()))
	cookie.Expires = expires
	c.SetCookie(cookie)
}

func (a *App) clearTokenCookie(c echo.Context) {
	c.SetCookie(a.tokenCookie("", -1))
}
