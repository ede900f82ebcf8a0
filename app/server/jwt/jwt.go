package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"strconv"
	"time"
)

// ErrInvalidToken 覆盖所有校验失败的情况（签名不符、格式错误、已过期），调用方无法区分具体原因
var ErrInvalidToken = errors.New("invalid token")

type JWT struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

type User struct {
	ID      uint
	TokenID string // jti，用于注销时加入吊销列表
	Expires int64  // Unix second
}

type Option func(*JWT)

// WithClock 替换时间来源，测试时使用
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// WithTTL 替换默认的会话有效期
func WithTTL(ttl time.Duration) Option {
	return func(j *JWT) {
		j.ttl = ttl
	}
}

func New(key string, ttl time.Duration, opts ...Option) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	j := &JWT{key: []byte(key), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}

	return j, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, ErrInvalidToken
	}

	// 只接受 HS256 ，且必须带有过期时间
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// 匹配内容
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}

	return &User{
		ID:      uint(id),
		TokenID: claims.ID,
		Expires: claims.ExpiresAt.Unix(),
	}, nil
}

// SignToken 为用户签出新的会话令牌，返回令牌与过期时间
func (j *JWT) SignToken(userID uint) (string, time.Time, error) {
	now := j.now()
	expires := now.Add(j.ttl)

	token, err := j.Sign(&User{
		ID:      userID,
		TokenID: uuid.NewString(),
		Expires: expires.Unix(),
	}, now)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expires, nil
}

// Sign 对固定的声明签名，相同的密钥与内容总是得到相同的结果
func (j *JWT) Sign(user *User, issuedAt time.Time) (string, error) {
	// 创建声明
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		ID:        user.TokenID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(time.Unix(user.Expires, 0)),
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
