package handlers

import (
	"bufio"
	"context"
	"errors"
	"go.uber.org/zap"
	"io"
	"time"
)

// Run 读取 in 中的每一行并发送，断线后按 ReconnectInterval 重连
// in 读完或 ctx 结束时返回
func (a *App) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	loggedIn := false
	for {
		if !loggedIn {
			user, err := a.Login(ctx)
			switch {
			case ctx.Err() != nil:
				return nil
			case errors.Is(err, ErrLoginRejected):
				// 凭据错误，重试没有意义
				return err
			case err != nil:
				a.l.Warn("failed to login", zap.Error(err), zap.Duration("retry", a.cfg.ReconnectInterval))
				if !sleep(ctx, a.cfg.ReconnectInterval) {
					return nil
				}
				continue
			}
			loggedIn = true
			a.printf("logged in as %s\n", user.Name)

			if err := a.History(ctx); err != nil {
				a.l.Warn("failed to load history", zap.Error(err))
			}
		}

		err := a.Chat(ctx, lines)
		switch {
		case ctx.Err() != nil:
			return nil
		case err == nil:
			// 输入结束
			return nil
		case errors.Is(err, ErrSessionExpired):
			a.l.Info("session expired, logging in again")
			loggedIn = false
			continue
		default:
			a.l.Warn("connection lost", zap.Error(err), zap.Duration("retry", a.cfg.ReconnectInterval))
		}

		if !sleep(ctx, a.cfg.ReconnectInterval) {
			return nil
		}
	}
}

// sleep 等待 d，ctx 提前结束时返回 false
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
