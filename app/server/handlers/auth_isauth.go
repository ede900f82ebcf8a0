package handlers

import (
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/types"
	"net/http"
)

func (a *App) AuthIsAuth(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	return c.JSON(http.StatusOK, &types.UserResponse{
		Success: true,
		User:    a.userInfo(user),
	})
}
