package inits

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"krishi-sathi/app/client/config"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if serverEp, exist := os.LookupEnv("SERVER_ENDPOINT"); !exist {
		return nil, fmt.Errorf("SERVER_ENDPOINT environment variable not set")
	} else if u, err := url.Parse(serverEp); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("SERVER_ENDPOINT should be an http(s) url")
	} else {
		cfg.ServerEndpoint = serverEp
	}

	if email, exist := os.LookupEnv("CHAT_EMAIL"); !exist {
		return nil, fmt.Errorf("CHAT_EMAIL environment variable not set")
	} else {
		cfg.Email = email
	}

	if password, exist := os.LookupEnv("CHAT_PASSWORD"); !exist {
		return nil, fmt.Errorf("CHAT_PASSWORD environment variable not set")
	} else {
		cfg.Password = password
	}

	if intervalStr, exist := os.LookupEnv("RECONNECT_INTERVAL"); !exist {
		cfg.ReconnectInterval = 5 * time.Second // 默认 5 秒后重连
	} else if interval, err := time.ParseDuration(intervalStr); err != nil || interval <= 0 {
		return nil, fmt.Errorf("RECONNECT_INTERVAL should be a positive duration")
	} else {
		cfg.ReconnectInterval = interval
	}

	if countStr, exist := os.LookupEnv("HISTORY_COUNT"); !exist {
		cfg.HistoryCount = 20
	} else if count, err := strconv.Atoi(countStr); err != nil || count < 0 {
		return nil, fmt.Errorf("HISTORY_COUNT should be a non-negative integer")
	} else {
		cfg.HistoryCount = count
	}

	return &cfg, nil
}
