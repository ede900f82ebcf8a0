package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/types"
	"net/http"
	"time"
)

// AuthLogout 清除 cookie ，如果带着有效的令牌就把它加入吊销列表
func (a *App) AuthLogout(c echo.Context) error {
	if cookie, err := c.Cookie(constants.AuthTokenCookieName); err == nil && cookie.Value != "" && a.revocations != nil {
		if jwtUser, err := a.jwt.ParseUser(cookie.Value); err == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), a.timeout)
			if err := a.revocations.Revoke(ctx, jwtUser.TokenID, time.Unix(jwtUser.Expires, 0)); err != nil {
				// 吊销失败时仍然清除 cookie
				a.l.Error("failed to revoke token", zap.String("jti", jwtUser.TokenID), zap.Error(err))
			}
			cancel()
		}
	}

	a.clearTokenCookie(c)

	return c.JSON(http.StatusOK, &types.Response{
		Success: true,
		Message: "Logged out successfully",
	})
}
