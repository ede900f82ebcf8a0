package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"krishi-sathi/app/server/apidocs"
	"krishi-sathi/app/server/cache"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/handlers"
	"krishi-sathi/app/server/inits"
	"krishi-sathi/app/server/jwt"
	"krishi-sathi/app/server/middlewares"
	"krishi-sathi/app/server/realtime"
	"krishi-sathi/app/server/repository"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey, constants.AuthTokenDuration)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备存储
	stores := handlers.Stores{
		Users:    repository.NewUserRepository(db),
		Articles: repository.NewArticleRepository(db),
		Forum:    repository.NewForumRepository(db),
		Products: repository.NewProductRepository(db),
		Stories:  repository.NewStoryRepository(db),
	}
	revocations := cache.NewRevocations(rdb)
	history := cache.NewChatHistory(rdb)

	// 启动实时广播
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(l.Named("realtime"))
	go hub.Run(ctx)

	// 准备 handler app
	gate := middlewares.NewGate(j, stores.Users, revocations, cfg.System.StoreTimeout, l.Named("gate"))
	handlerApp, err := handlers.NewApp(l, cfg, stores, j, gate, hub, revocations, history)
	if err != nil {
		l.Fatal("error initializing handlers", zap.Error(err))
	}

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.System.FrontendURL},
		AllowCredentials: true,
	}))

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp)

	// 添加 API 文档
	if !cfg.System.IsProd {
		const docTitle = "Krishi Sathi API"
		if swgJson, err := apidocs.JSON(docTitle, "1.0.0", e.Routes()); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", swgJson, apidocs.WithTitle(docTitle)))
		}
	}

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		l.Error("error closing Redis connection", zap.Error(err))
	}
}
