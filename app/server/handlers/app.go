package handlers

import (
	"context"
	"crypto/cipher"
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"krishi-sathi/app/server/config"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/jwt"
	"krishi-sathi/app/server/middlewares"
	"krishi-sathi/app/server/realtime"
	"krishi-sathi/app/server/repository"
	"time"
)

// Stores 是 handler 依赖的全部持久化存储
type Stores struct {
	Users    repository.UserRepository
	Articles repository.ArticleRepository
	Forum    repository.ForumRepository
	Products repository.ProductRepository
	Stories  repository.StoryRepository
}

// TokenRevoker 记录已经注销的令牌
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expires time.Time) error
}

// ChatStore 保存最近的聊天记录
type ChatStore interface {
	Append(ctx context.Context, message any) error
	Recent(ctx context.Context, count int) ([]json.RawMessage, error)
}

type App struct {
	l           *zap.Logger        // 日志
	isProd      bool               // 生产环境下 cookie 需要 Secure
	frontendURL string             // 允许发起 websocket 连接的来源
	timeout     time.Duration      // 后台存储操作的超时
	stores      Stores             // 数据库
	jwt         *jwt.JWT           // JWT ，用于无状态验证
	gate        *middlewares.Gate  // 会话校验
	hub         *realtime.Hub      // 实时广播
	revocations TokenRevoker       // 可以为 nil
	history     ChatStore          // 可以为 nil
	aead        cipher.AEAD        // 由 EncryptSecretKey 生成，用于加密手机号
	upgrader    websocket.Upgrader // websocket
}

func NewApp(l *zap.Logger, cfg *config.Config, stores Stores, j *jwt.JWT, gate *middlewares.Gate, hub *realtime.Hub, revocations TokenRevoker, history ChatStore) (*App, error) {
	aead, err := newAEAD([]byte(cfg.Security.EncryptSecretKey))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	timeout := cfg.System.StoreTimeout
	if timeout <= 0 {
		timeout = constants.AuthStoreTimeout
	}

	a := &App{
		l:           l,
		isProd:      cfg.System.IsProd,
		frontendURL: cfg.System.FrontendURL,
		timeout:     timeout,
		stores:      stores,
		jwt:         j,
		gate:        gate,
		hub:         hub,
		revocations: revocations,
		history:     history,
		aead:        aead,
	}
	a.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     a.checkOrigin,
	}

	return a, nil
}
