package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"krishi-sathi/app/server/realtime"
	"krishi-sathi/app/server/types"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrSessionExpired = errors.New("session expired")

func (a *App) wsURL() (string, error) {
	u, err := url.Parse(a.cfg.ServerEndpoint)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String(), nil
}

// Chat 建立实时连接，打印收到的事件，并把 lines 中的每一行作为消息发送
// 连接断开或 ctx 结束时返回
func (a *App) Chat(ctx context.Context, lines <-chan string) error {
	wsUrl, err := a.wsURL()
	if err != nil {
		return fmt.Errorf("build websocket url: %w", err)
	}

	dialer := websocket.Dialer{
		Jar:              a.jar,
		HandshakeTimeout: 10 * time.Second,
	}
	conn, res, err := dialer.DialContext(ctx, wsUrl, nil)
	if err != nil {
		if res != nil && res.StatusCode == http.StatusUnauthorized {
			return ErrSessionExpired
		}
		return fmt.Errorf("dial %s: %w", wsUrl, err)
	}
	defer conn.Close()

	a.l.Info("connected", zap.String("endpoint", wsUrl))

	// 读循环
	readErr := make(chan error, 1)
	go func() {
		for {
			var ev realtime.Event
			if err := conn.ReadJSON(&ev); err != nil {
				readErr <- err
				return
			}
			a.handleEvent(&ev)
		}
	}()

	// 写循环
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			return ctx.Err()
		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		case line, ok := <-lines:
			if !ok {
				// 输入结束
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(time.Second),
				)
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			ev, err := realtime.NewEvent(realtime.EventSendMessage, &realtime.SendMessageInput{Text: line})
			if err != nil {
				return fmt.Errorf("encode message: %w", err)
			}
			if err := conn.WriteJSON(&ev); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
	}
}

func (a *App) handleEvent(ev *realtime.Event) {
	switch ev.Type {
	case realtime.EventReceiveMessage:
		var msg realtime.ChatMessage
		if err := json.Unmarshal(ev.Data, &msg); err != nil {
			a.l.Warn("malformed message", zap.Error(err))
			return
		}
		a.printMessage(&msg)
	case realtime.EventNewReply:
		var reply types.ReplyInfo
		if err := json.Unmarshal(ev.Data, &reply); err != nil {
			a.l.Warn("malformed reply", zap.Error(err))
			return
		}
		a.printf("* %s replied to post #%d: %s\n", reply.User.Name, reply.PostID, reply.Message)
	case realtime.EventError:
		var payload realtime.ErrorPayload
		_ = json.Unmarshal(ev.Data, &payload)
		a.printf("! %s\n", payload.Message)
	default:
		a.l.Debug("unknown event", zap.String("event", ev.Type))
	}
}
