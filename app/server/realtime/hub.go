package realtime

import (
	"context"
	"errors"
	"go.uber.org/zap"
	"krishi-sathi/app/server/constants"
	"sync"
)

var ErrHubClosed = errors.New("realtime hub is closed")

// Subscription 是一个连接在 hub 中的订阅句柄
type Subscription struct {
	hub    *Hub
	events chan Event
	once   sync.Once
	done   chan struct{}
}

// Events 在订阅被取消或因为消费过慢被丢弃后关闭
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Cancel 可以重复调用
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		select {
		case s.hub.unregister <- s:
		case <-s.hub.closed:
		}
	})
}

type publishRequest struct {
	event Event
	ack   chan struct{}
}

// Hub 在单个 goroutine 中顺序处理订阅、取消与广播
type Hub struct {
	l          *zap.Logger
	register   chan *Subscription
	unregister chan *Subscription
	broadcast  chan publishRequest
	closed     chan struct{}
	bufferSize int

	subscribers map[*Subscription]struct{}
}

func NewHub(l *zap.Logger) *Hub {
	return &Hub{
		l:           l,
		register:    make(chan *Subscription),
		unregister:  make(chan *Subscription),
		broadcast:   make(chan publishRequest),
		closed:      make(chan struct{}),
		bufferSize:  constants.RealtimeSendBuffer,
		subscribers: make(map[*Subscription]struct{}),
	}
}

// Run 阻塞直到 ctx 结束，结束时关闭所有订阅
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.closed)
		for sub := range h.subscribers {
			h.drop(sub)
		}
		h.l.Debug("realtime hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case sub := <-h.register:
			h.subscribers[sub] = struct{}{}
			h.l.Debug("subscriber joined", zap.Int("subscribers", len(h.subscribers)))

		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub]; ok {
				h.drop(sub)
				h.l.Debug("subscriber left", zap.Int("subscribers", len(h.subscribers)))
			}

		case req := <-h.broadcast:
			for sub := range h.subscribers {
				select {
				case <-sub.done:
					h.drop(sub)
				case sub.events <- req.event:
				default:
					// 消费太慢，直接断开
					h.l.Warn("subscriber buffer full, dropping", zap.String("event", req.event.Type))
					h.drop(sub)
				}
			}
			close(req.ack)
		}
	}
}

func (h *Hub) drop(sub *Subscription) {
	delete(h.subscribers, sub)
	close(sub.events)
}

// Subscribe 返回时订阅已经在集合中，之后的广播都会送达
func (h *Hub) Subscribe(ctx context.Context) (*Subscription, error) {
	sub := &Subscription{
		hub:    h,
		events: make(chan Event, h.bufferSize),
		done:   make(chan struct{}),
	}

	select {
	case h.register <- sub:
		return sub, nil
	case <-h.closed:
		return nil, ErrHubClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Publish 返回时事件已经投递给当时所有的订阅
func (h *Hub) Publish(ctx context.Context, event Event) error {
	req := publishRequest{event: event, ack: make(chan struct{})}

	select {
	case h.broadcast <- req:
	case <-h.closed:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-req.ack:
		return nil
	case <-h.closed:
		return ErrHubClosed
	}
}

// PublishData 编码 data 后广播
func (h *Hub) PublishData(ctx context.Context, eventType string, data any) error {
	event, err := NewEvent(eventType, data)
	if err != nil {
		return err
	}
	return h.Publish(ctx, event)
}
