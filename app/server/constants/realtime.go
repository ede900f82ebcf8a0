package constants

import "time"

const (
	RealtimeWriteWait      = 10 * time.Second
	RealtimePongWait       = 60 * time.Second
	RealtimePingPeriod     = (RealtimePongWait * 9) / 10 // 必须小于 pongWait
	RealtimeMaxMessageSize = 4096
	RealtimeSendBuffer     = 256
)
