package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/types"
	"net/http"
)

// er 把错误分类转换成统一的失败响应，详细信息只写到日志里
func (a *App) er(c echo.Context, err error) error {
	status := errs.Status(err)
	if status >= http.StatusInternalServerError {
		a.l.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(status, types.Failure(errs.Message(err)))
}

// HTTPErrorHandler 让路由 404/405 、 panic 等 echo 层面的错误也使用统一的响应体
func (a *App) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status  int
		message string
		he      *echo.HTTPError
	)
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
		if status >= http.StatusInternalServerError {
			a.l.Error("unhandled http error", zap.Error(err))
			message = errs.ErrStore.Error()
		}
	} else {
		status = errs.Status(err)
		message = errs.Message(err)
		if status >= http.StatusInternalServerError {
			a.l.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, types.Failure(message))
	}
	if err != nil {
		a.l.Error("failed to write error response", zap.Error(err))
	}
}
