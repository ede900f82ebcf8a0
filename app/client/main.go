package main

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"krishi-sathi/app/client/handlers"
	"krishi-sathi/app/client/inits"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	l.Debug("logger initialized")

	handlerApp, err := handlers.NewApp(cfg, l, os.Stdout)
	if err != nil {
		l.Fatal("error initializing client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 从标准输入读取消息，直到输入结束或收到退出信号
	if err := handlerApp.Run(ctx, os.Stdin); err != nil {
		l.Error("client stopped", zap.Error(err))
		os.Exit(1)
	}
}
