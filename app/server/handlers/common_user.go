package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/middlewares"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"slices"
)

// currentUser 读取会话校验写入的用户，路由没有挂会话校验时返回 401
func (a *App) currentUser(c echo.Context) (*models.User, error) {
	user, ok := middlewares.UserFrom(c)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	return user, nil
}

// canModify 资源的所有者，或者拥有指定角色的用户可以修改
func canModify(user *models.User, ownerID uint, roles ...models.Role) bool {
	return user.ID == ownerID || slices.Contains(roles, user.Role)
}

func (a *App) userInfo(user *models.User) *types.UserInfo {
	phone, err := a.decryptPhone(user.Phone)
	if err != nil {
		// 密钥轮换后旧数据无法解密，不影响其它字段
		a.l.Warn("failed to decrypt phone", zap.Uint("id", user.ID), zap.Error(err))
	}

	return &types.UserInfo{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Phone:       phone,
		Region:      user.Region,
		FarmingType: user.FarmingType,
		Avatar:      user.Avatar,
		CreatedAt:   user.CreatedAt,
	}
}

func userBrief(user *models.User) types.UserBrief {
	return types.UserBrief{
		ID:     user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
}
