package middlewares

import (
	"context"
	"errors"
	"fmt"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/jwt"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"time"
)

// UserFinder 是会话校验需要的凭据存储能力
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// RevocationChecker 查询令牌是否已被注销
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const ctxKeyAuthErr = "session_auth_error"

type userContextKey struct{}

// Gate 在每个受保护的请求前校验会话 cookie
type Gate struct {
	jwt     *jwt.JWT
	users   UserFinder
	revoked RevocationChecker // 为 nil 时不检查吊销列表
	timeout time.Duration
	l       *zap.Logger
}

func NewGate(j *jwt.JWT, users UserFinder, revoked RevocationChecker, timeout time.Duration, l *zap.Logger) *Gate {
	if timeout <= 0 {
		timeout = constants.AuthStoreTimeout
	}
	return &Gate{
		jwt:     j,
		users:   users,
		revoked: revoked,
		timeout: timeout,
		l:       l,
	}
}

// Authenticate 校验令牌并加载对应用户。
// 缺失、伪造、过期、已注销的令牌以及已不存在的用户都返回 errs.ErrUnauthenticated ；
// 存储故障返回 errs.ErrStore 。
func (g *Gate) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("missing session token: %w", errs.ErrUnauthenticated)
	}

	// 验证 token
	jwtUser, err := g.jwt.ParseUser(token)
	if err != nil {
		g.l.Debug("rejected session token", zap.Error(err))
		return nil, fmt.Errorf("parse session token: %w", errs.ErrUnauthenticated)
	}

	// 为存储查询设置超时
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// 检查吊销列表
	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(ctx, jwtUser.TokenID)
		if err != nil {
			g.l.Error("failed to check token revocation", zap.String("jti", jwtUser.TokenID), zap.Error(err))
			return nil, fmt.Errorf("check revocation: %w", errs.ErrStore)
		}
		if revoked {
			return nil, fmt.Errorf("token %s revoked: %w", jwtUser.TokenID, errs.ErrUnauthenticated)
		}
	}

	// 加载用户
	user, err := g.users.FindByID(ctx, jwtUser.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("user %d no longer exists: %w", jwtUser.ID, errs.ErrUnauthenticated)
		}
		g.l.Error("failed to load session user", zap.Uint("id", jwtUser.ID), zap.Error(err))
		return nil, fmt.Errorf("load user %d: %w", jwtUser.ID, errs.ErrStore)
	}

	// 附加到请求上的用户不带密码 hash
	attached := *user
	attached.Password = ""
	return &attached, nil
}

// Middleware 从 cookie 中提取令牌并完成校验，成功后把用户写入 echo context 与请求 context
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + constants.AuthTokenCookieName,
		ContextKey:  constants.ContextKeyUser,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			user, err := g.Authenticate(c.Request().Context(), auth)
			if err != nil {
				c.Set(ctxKeyAuthErr, err)
				return nil, err
			}
			return user, nil
		},
		SuccessHandler: func(c echo.Context) {
			if user, ok := UserFrom(c); ok {
				c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// 没有 cookie 时只有提取错误
			authErr, ok := c.Get(ctxKeyAuthErr).(error)
			if !ok {
				authErr = errs.ErrUnauthenticated
			}
			return c.JSON(errs.Status(authErr), types.Failure(errs.Message(authErr)))
		},
	})
}

// UserFrom 读取会话校验写入的用户
func UserFrom(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(constants.ContextKeyUser).(*models.User)
	return user, ok && user != nil
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}
