package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"krishi-sathi/app/server/types"
	"net/http"
	"net/url"
)

var ErrLoginRejected = errors.New("login rejected")

// Login 登录并把会话 cookie 写入 jar
func (a *App) Login(ctx context.Context) (*types.UserInfo, error) {
	// 准备请求的基础信息
	reqUrl, err := url.JoinPath(a.cfg.ServerEndpoint, "/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("join login url: %w", err)
	}

	body, err := json.Marshal(&types.LoginRequest{
		Email:    a.cfg.Email,
		Password: a.cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("prepare login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// 发送请求
	res, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send login request: %w", err)
	}
	defer res.Body.Close()

	// 解析请求体
	var resBody types.UserResponse
	if err := json.NewDecoder(res.Body).Decode(&resBody); err != nil {
		return nil, fmt.Errorf("decode login response (status %d): %w", res.StatusCode, err)
	}
	if res.StatusCode != http.StatusOK || !resBody.Success || resBody.User == nil {
		return nil, fmt.Errorf("%w: %s", ErrLoginRejected, resBody.Message)
	}

	a.l.Debug("logged in", zap.Uint("id", resBody.User.ID), zap.String("name", resBody.User.Name))
	return resBody.User, nil
}
