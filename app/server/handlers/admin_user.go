package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"net/http"
)

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	page, err := a.page(c)
	if err != nil {
		return a.er(c, err)
	}

	users, count, err := a.stores.Users.List(rctx, page)
	if err != nil {
		return a.er(c, err)
	}

	resUsers := []types.UserInfo{}
	for i := range users {
		resUsers = append(resUsers, *a.userInfo(&users[i]))
	}

	limit, pageMax := a.listMeta(page, count)
	return c.JSON(http.StatusOK, &types.UserListResponse{
		Success: true,
		Limit:   limit,
		PageMax: pageMax,
		Users:   resUsers,
	})
}

// UserRoleUpdate 管理员不能修改自己的角色，避免系统里没有管理员
func (a *App) UserRoleUpdate(c echo.Context) error {
	operator, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req types.RoleUpdateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	if id == operator.ID {
		return a.er(c, fmt.Errorf("user %d changing own role: %w", id, errs.ErrForbidden))
	}

	user, err := a.stores.Users.UpdateRole(c.Request().Context(), id, models.Role(req.Role))
	if err != nil {
		return a.er(c, err)
	}
	a.l.Info("user role updated", zap.Uint("id", id), zap.String("role", req.Role), zap.Uint("operator", operator.ID))

	return c.JSON(http.StatusOK, &types.UserResponse{
		Success: true,
		User:    a.userInfo(user),
	})
}
