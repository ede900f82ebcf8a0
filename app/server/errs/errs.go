// Package errs 是会话校验、存储与路由共用的错误分类，每一类对应一个 HTTP 状态码
package errs

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("not authorized")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("invalid request")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrStore           = errors.New("internal server error")
)

// Status 返回 err 对应的状态码，未知错误按存储故障处理
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message 返回给客户端的提示，不包含被包装的细节
func Message(err error) string {
	for _, kind := range []error{ErrUnauthenticated, ErrForbidden, ErrValidation, ErrNotFound, ErrConflict} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrStore.Error()
}
