package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/errs"
	"strconv"
)

// parseID 读取路径中的数字 id ， 0 和非数字都视为非法请求
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, errs.ErrValidation)
	}
	return uint(id), nil
}
