package handlers

import (
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/types"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &types.Response{Success: true})
}
