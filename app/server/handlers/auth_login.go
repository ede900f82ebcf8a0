package handlers

import (
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"net/http"
	"strings"
)

// issueSession 签出令牌并写入 cookie
func (a *App) issueSession(c echo.Context, user *models.User) error {
	token, expires, err := a.jwt.SignToken(user.ID)
	if err != nil {
		a.l.Error("failed to sign token", zap.Uint("id", user.ID), zap.Error(err))
		return fmt.Errorf("sign token: %w", errs.ErrStore)
	}
	a.setTokenCookie(c, token, expires)
	return nil
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	user, err := a.stores.Users.FindByEmail(rctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// 不区分用户不存在与密码错误
			return a.er(c, errs.ErrUnauthenticated)
		}
		return a.er(c, err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, errs.ErrStore)
	} else if !match {
		// 密码不一致
		return a.er(c, errs.ErrUnauthenticated)
	}

	// 签出 JWT
	if err := a.issueSession(c, user); err != nil {
		return a.er(c, err)
	}

	// 返回
	return c.JSON(http.StatusOK, &types.UserResponse{
		Success: true,
		Message: "Login successful",
		User:    a.userInfo(user),
	})
}
