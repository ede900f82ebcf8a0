package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/realtime"
	"net/http"
)

// checkOrigin 允许没有 Origin 的非浏览器客户端，浏览器只允许前端地址
func (a *App) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || origin == a.frontendURL
}

// RealtimeConnect 在会话校验通过后升级为 websocket ，发送者身份取自会话
func (a *App) RealtimeConnect(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	// 握手之前订阅
	sub, err := a.hub.Subscribe(c.Request().Context())
	if err != nil {
		a.l.Error("failed to subscribe realtime hub", zap.Error(err))
		return a.er(c, errs.ErrStore)
	}

	conn, err := a.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade 已经写入了错误响应
		sub.Cancel()
		a.l.Debug("failed to upgrade websocket", zap.Error(err))
		return nil
	}

	realtime.Serve(c.Request().Context(), sub, conn, user, a.history, a.l)
	return nil
}
