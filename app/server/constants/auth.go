package constants

import "time"

const (
	AuthTokenDuration   = 7 * 24 * time.Hour // 会话有效期：7 天
	AuthTokenCookieName = "token"
	AuthStoreTimeout    = 5 * time.Second // 会话校验时查询用户的默认超时
	PasswordMinLength   = 6               // 与注册请求的 min=6 一致
)

// 认证后写入 echo context 的键
const (
	ContextKeyUser = "user"
)

// 注册与登录的限流：每个 IP 每 6 秒补充一次，最多连续 10 次
const (
	AuthRateLimitEvery   = 6 * time.Second
	AuthRateLimitBurst   = 10
	AuthRateLimitExpires = 3 * time.Minute
)
