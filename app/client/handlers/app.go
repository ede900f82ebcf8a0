package handlers

import (
	"fmt"
	"go.uber.org/zap"
	"io"
	"krishi-sathi/app/client/config"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"
)

type App struct {
	cfg *config.Config
	l   *zap.Logger

	jar  http.CookieJar // 保存登录后的会话 cookie
	http *http.Client
	out  io.Writer
	lock sync.Mutex // 保护 out
}

func NewApp(cfg *config.Config, l *zap.Logger, out io.Writer) (*App, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &App{
		cfg: cfg,
		l:   l,
		jar: jar,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
		out: out,
	}, nil
}

func (a *App) printf(format string, args ...any) {
	a.lock.Lock()
	defer a.lock.Unlock()
	_, _ = fmt.Fprintf(a.out, format, args...)
}
