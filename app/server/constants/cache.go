package constants

import "time"

const (
	CacheKeySessionRevoked = "agri:session:revoked:%s" // %s -> token id (jti)
	CacheKeyChatHistory    = "agri:chat:history"
)

const (
	CacheExpireChatHistory = 24 * time.Hour
	ChatHistoryMaxLength   = 50
)
