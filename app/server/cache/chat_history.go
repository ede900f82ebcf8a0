package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"krishi-sathi/app/server/constants"
)

// ChatHistory 在 redis 中保留最近的聊天消息（新消息在前）
type ChatHistory struct {
	rdb    *redis.Client
	maxLen int64
}

func NewChatHistory(rdb *redis.Client) *ChatHistory {
	return &ChatHistory{rdb: rdb, maxLen: constants.ChatHistoryMaxLength}
}

// Append 追加一条消息并裁剪列表长度
func (h *ChatHistory) Append(ctx context.Context, message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	pipe := h.rdb.TxPipeline()
	pipe.LPush(ctx, constants.CacheKeyChatHistory, data)
	pipe.LTrim(ctx, constants.CacheKeyChatHistory, 0, h.maxLen-1)
	pipe.Expire(ctx, constants.CacheKeyChatHistory, constants.CacheExpireChatHistory)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// Recent 返回最近的 count 条消息的原始 JSON ，按时间从旧到新排列
func (h *ChatHistory) Recent(ctx context.Context, count int) ([]json.RawMessage, error) {
	if count <= 0 || int64(count) > h.maxLen {
		count = int(h.maxLen)
	}

	items, err := h.rdb.LRange(ctx, constants.CacheKeyChatHistory, 0, int64(count-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	messages := make([]json.RawMessage, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		messages = append(messages, json.RawMessage(items[i]))
	}
	return messages, nil
}
