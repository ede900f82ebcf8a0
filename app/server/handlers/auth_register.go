package handlers

import (
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"net/http"
	"strings"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := a.bind(c, &req); err != nil {
		a.l.Debug("invalid register request", zap.Error(err))
		return a.er(c, err)
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, errs.ErrStore)
	}

	// 加密手机号
	phone, err := a.encryptPhone(req.Phone)
	if err != nil {
		a.l.Error("failed to encrypt phone", zap.Error(err))
		return a.er(c, errs.ErrStore)
	}

	// 创建用户，重复的邮箱由唯一索引拒绝
	user := models.User{
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Role:        models.RoleFarmer,
		Phone:       phone,
		Region:      req.Region,
		FarmingType: req.FarmingType,
		Avatar:      req.Avatar,
		Password:    passwordHash,
	}
	if err := a.stores.Users.Create(rctx, &user); err != nil {
		return a.er(c, err)
	}

	// 签出 JWT
	if err := a.issueSession(c, &user); err != nil {
		return a.er(c, err)
	}

	return c.JSON(http.StatusCreated, &types.UserResponse{
		Success: true,
		Message: "Registration successful",
		User:    a.userInfo(&user),
	})
}
