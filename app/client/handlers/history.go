package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"go.uber.org/zap"
	"krishi-sathi/app/server/realtime"
	"krishi-sathi/app/server/types"
	"net/http"
	"net/url"
	"strconv"
)

// History 拉取并打印最近的聊天记录
func (a *App) History(ctx context.Context) error {
	if a.cfg.HistoryCount == 0 {
		return nil
	}

	reqUrl, err := url.JoinPath(a.cfg.ServerEndpoint, "/api/chat/recent")
	if err != nil {
		return fmt.Errorf("join history url: %w", err)
	}
	reqUrl += "?count=" + strconv.Itoa(a.cfg.HistoryCount)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return fmt.Errorf("prepare history request: %w", err)
	}

	res, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("send history request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("history request failed with status %d", res.StatusCode)
	}

	var resBody types.ChatHistoryResponse
	if err := json.NewDecoder(res.Body).Decode(&resBody); err != nil {
		return fmt.Errorf("decode history response: %w", err)
	}

	for _, raw := range resBody.Messages {
		var msg realtime.ChatMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			a.l.Warn("skipping malformed history message", zap.Error(err))
			continue
		}
		a.printMessage(&msg)
	}
	return nil
}

func (a *App) printMessage(msg *realtime.ChatMessage) {
	a.printf("[%s] %s: %s\n", msg.Timestamp.Local().Format("15:04"), msg.Sender, msg.Text)
}
