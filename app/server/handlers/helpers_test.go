package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"krishi-sathi/app/server/cache"
	"krishi-sathi/app/server/config"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/jwt"
	"krishi-sathi/app/server/middlewares"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/realtime"
)

const (
	testSignatureKey = "handler-test-signature"
	testFrontendURL  = "http://localhost:5173"
)

var testEncryptKey = strings.Repeat("e", 32)

type testServer struct {
	e        *echo.Echo
	app      *App
	jwt      *jwt.JWT
	hub      *realtime.Hub
	mr       *miniredis.Miniredis
	users    *fakeUsers
	articles *fakeArticles
	forum    *fakeForum
	products *fakeProducts
	stories  *fakeStories
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	var cfg config.Config
	cfg.System.FrontendURL = testFrontendURL
	cfg.System.StoreTimeout = time.Second
	cfg.Security.EncryptSecretKey = testEncryptKey
	cfg.Security.SignatureSecretKey = testSignatureKey

	j, err := jwt.New(testSignatureKey, constants.AuthTokenDuration)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	hub := realtime.NewHub(zap.NewNop())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	s := &testServer{
		e:        echo.New(),
		jwt:      j,
		hub:      hub,
		mr:       mr,
		users:    newFakeUsers(),
		articles: &fakeArticles{},
		forum:    &fakeForum{},
		products: &fakeProducts{},
		stories:  &fakeStories{},
	}
	stores := Stores{
		Users:    s.users,
		Articles: s.articles,
		Forum:    s.forum,
		Products: s.products,
		Stories:  s.stories,
	}

	revocations := cache.NewRevocations(rdb)
	gate := middlewares.NewGate(j, s.users, revocations, time.Second, zap.NewNop())
	s.app, err = NewApp(zap.NewNop(), &cfg, stores, j, gate, hub, revocations, cache.NewChatHistory(rdb))
	require.NoError(t, err)

	RegisterHandlers(s.e, s.app)
	return s
}

// addUser 直接在存储里创建用户，返回用户与有效的会话令牌
func (s *testServer) addUser(t *testing.T, name string, role models.Role) (*models.User, string) {
	t.Helper()

	hash, err := argon2id.CreateHash("pw123456", argon2id.DefaultParams)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@x.com",
		Role:     role,
		Password: hash,
	}
	require.NoError(t, s.users.Create(context.Background(), user))

	token, _, err := s.jwt.SignToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constants.AuthTokenCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// sessionCookie 取出响应里设置的会话 cookie
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.AuthTokenCookieName {
			return c
		}
	}
	return nil
}

func uintStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
