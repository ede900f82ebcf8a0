package config

import (
	"time"
)

type Config struct {
	// 基础配置
	IsProd bool

	// 与 Server 通信配置
	ServerEndpoint    string
	Email             string
	Password          string
	ReconnectInterval time.Duration

	// 启动时展示的历史消息数量
	HistoryCount int
}
