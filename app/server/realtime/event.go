package realtime

import (
	"encoding/json"
	"time"
)

// 事件名称
const (
	EventSendMessage    = "sendMessage"
	EventReceiveMessage = "receiveMessage"
	EventNewReply       = "newReply"
	EventError          = "error"
)

// Event 是 websocket 上传输的帧 {"event": "...", "data": {...}}
type Event struct {
	Type string          `json:"event"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEvent 把 data 编码后包装成事件
func NewEvent(eventType string, data any) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Data: raw}, nil
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	SenderID  uint      `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessageInput 是客户端 sendMessage 的负载，发送者由连接身份决定
type SendMessageInput struct {
	Text string `json:"text"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
