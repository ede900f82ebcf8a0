package realtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case event, ok := <-sub.Events():
		require.True(t, ok, "subscription closed")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case event, ok := <-sub.Events():
		if ok {
			t.Fatalf("unexpected event %q", event.Type)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FanOutInOrder(t *testing.T) {
	hub := startHub(t)
	ctx := context.Background()

	subs := make([]*Subscription, 3)
	for i := range subs {
		sub, err := hub.Subscribe(ctx)
		require.NoError(t, err)
		subs[i] = sub
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, hub.PublishData(ctx, EventReceiveMessage, &ChatMessage{ID: fmt.Sprint(i)}))
	}

	for _, sub := range subs {
		for i := 0; i < 5; i++ {
			event := receive(t, sub)
			assert.Equal(t, EventReceiveMessage, event.Type)
			assert.JSONEq(t, fmt.Sprintf(`{"id":"%d","sender":"","senderId":0,"text":"","timestamp":"0001-01-01T00:00:00Z"}`, i), string(event.Data))
		}
	}
}

func TestHub_LateSubscriberMissesEarlierEvents(t *testing.T) {
	hub := startHub(t)
	ctx := context.Background()

	early, err := hub.Subscribe(ctx)
	require.NoError(t, err)
	require.NoError(t, hub.PublishData(ctx, EventNewReply, map[string]string{"message": "first"}))

	late, err := hub.Subscribe(ctx)
	require.NoError(t, err)
	require.NoError(t, hub.PublishData(ctx, EventNewReply, map[string]string{"message": "second"}))

	assert.JSONEq(t, `{"message":"first"}`, string(receive(t, early).Data))
	assert.JSONEq(t, `{"message":"second"}`, string(receive(t, early).Data))
	assert.JSONEq(t, `{"message":"second"}`, string(receive(t, late).Data))
	assertNoEvent(t, late)
}

func TestHub_CancelIsIdempotentAndTerminal(t *testing.T) {
	hub := startHub(t)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx)
	require.NoError(t, err)
	other, err := hub.Subscribe(ctx)
	require.NoError(t, err)

	sub.Cancel()
	sub.Cancel()

	require.NoError(t, hub.PublishData(ctx, EventNewReply, map[string]int{"postId": 1}))

	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.Equal(t, EventNewReply, receive(t, other).Type)
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := startHub(t)
	hub.bufferSize = 1
	ctx := context.Background()

	slow, err := hub.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, hub.PublishData(ctx, EventNewReply, 1))
	require.NoError(t, hub.PublishData(ctx, EventNewReply, 2))

	assert.JSONEq(t, `1`, string(receive(t, slow).Data))
	_, ok := <-slow.Events()
	assert.False(t, ok)

	// 被丢弃后取消不会阻塞
	slow.Cancel()
}

func TestHub_Closed(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	sub, err := hub.Subscribe(context.Background())
	require.NoError(t, err)

	cancel()
	<-done

	_, ok := <-sub.Events()
	assert.False(t, ok)
	sub.Cancel()

	_, err = hub.Subscribe(context.Background())
	assert.ErrorIs(t, err, ErrHubClosed)
	assert.ErrorIs(t, hub.Publish(context.Background(), Event{Type: EventNewReply}), ErrHubClosed)
}
