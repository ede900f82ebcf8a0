package realtime

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/models"
	"strings"
	"time"
)

// HistoryAppender 保存广播过的聊天消息
type HistoryAppender interface {
	Append(ctx context.Context, message any) error
}

// Client 连接一个已通过会话校验的 websocket 与 hub
type Client struct {
	hub     *Hub
	sub     *Subscription
	conn    *websocket.Conn
	user    *models.User
	history HistoryAppender // 可以为 nil
	direct  chan Event      // 只发给当前连接的事件
	l       *zap.Logger
}

// Serve 阻塞到连接断开，退出时取消订阅。 conn 的所有权转交给 Client 。
// 调用方应在完成握手之前订阅，保证握手成功后的广播都能收到。
func Serve(ctx context.Context, sub *Subscription, conn *websocket.Conn, user *models.User, history HistoryAppender, l *zap.Logger) {
	c := &Client{
		hub:     sub.hub,
		sub:     sub,
		conn:    conn,
		user:    user,
		history: history,
		direct:  make(chan Event, 16),
		l:       l.With(zap.Uint("userId", user.ID)),
	}
	c.l.Debug("realtime client connected")

	go c.writePump()
	c.readPump(ctx)
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.sub.Cancel()
		_ = c.conn.Close()
		c.l.Debug("realtime client disconnected")
	}()

	c.conn.SetReadLimit(constants.RealtimeMaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(constants.RealtimePongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(constants.RealtimePongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.l.Warn("realtime read error", zap.Error(err))
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.reply("malformed frame")
			continue
		}

		switch event.Type {
		case EventSendMessage:
			c.handleSendMessage(ctx, event.Data)
		case EventNewReply:
			// 只有服务端在回复创建成功后广播
			c.reply("newReply can not be sent by clients")
		default:
			c.reply("unknown event")
		}
	}
}

func (c *Client) handleSendMessage(ctx context.Context, data json.RawMessage) {
	var input SendMessageInput
	if err := json.Unmarshal(data, &input); err != nil {
		c.reply("malformed message")
		return
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		c.reply("message text is required")
		return
	}

	// 发送者信息取自已验证的身份
	msg := ChatMessage{
		ID:        uuid.NewString(),
		Sender:    c.user.Name,
		SenderID:  c.user.ID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	if c.history != nil {
		hctx, cancel := context.WithTimeout(ctx, constants.AuthStoreTimeout)
		if err := c.history.Append(hctx, &msg); err != nil {
			c.l.Warn("failed to save chat message", zap.Error(err))
		}
		cancel()
	}

	if err := c.hub.PublishData(ctx, EventReceiveMessage, &msg); err != nil {
		c.l.Error("failed to publish chat message", zap.Error(err))
	}
}

func (c *Client) reply(message string) {
	event, err := NewEvent(EventError, &ErrorPayload{Message: message})
	if err != nil {
		return
	}
	select {
	case c.direct <- event:
	default:
		c.l.Warn("direct queue full, dropping error event", zap.String("message", message))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(constants.RealtimePingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.sub.Events():
			_ = c.conn.SetWriteDeadline(time.Now().Add(constants.RealtimeWriteWait))
			if !ok {
				// 订阅已结束
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(&event); err != nil {
				c.l.Debug("realtime write error", zap.Error(err))
				return
			}

		case event := <-c.direct:
			_ = c.conn.SetWriteDeadline(time.Now().Add(constants.RealtimeWriteWait))
			if err := c.conn.WriteJSON(&event); err != nil {
				c.l.Debug("realtime write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(constants.RealtimeWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
