package middlewares

import (
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"net/http"
	"slices"
)

// RequireRole 必须挂在会话校验之后：没有身份时返回 401 ，角色不符时返回 403
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, types.Failure(errs.ErrUnauthenticated.Error()))
			}

			if !slices.Contains(roles, user.Role) {
				return c.JSON(http.StatusForbidden, types.Failure(errs.ErrForbidden.Error()))
			}

			return next(c)
		}
	}
}
