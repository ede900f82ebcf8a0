package handlers

import (
	"encoding/json"
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/types"
	"net/http"
	"strconv"
)

// ChatRecent 返回最近的聊天记录，按时间从旧到新
func (a *App) ChatRecent(c echo.Context) error {
	count := constants.ChatHistoryMaxLength
	if raw := c.QueryParam("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			count = n
		}
	}

	messages := []json.RawMessage{}
	if a.history != nil {
		recent, err := a.history.Recent(c.Request().Context(), count)
		if err != nil {
			return a.er(c, err)
		}
		messages = append(messages, recent...)
	}

	return c.JSON(http.StatusOK, &types.ChatHistoryResponse{
		Success:  true,
		Messages: messages,
	})
}
