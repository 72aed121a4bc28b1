package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashleypule/soccer-score/config"
	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/services"
	"github.com/ashleypule/soccer-score/web"
)

func main() {
	logger.Println("Starting soccer-score service...")

	// 加载配置
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	stack, err := services.Bootstrap(cfg)
	if err != nil {
		logger.Fatalf("Failed to start services: %v", err)
	}
	defer stack.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动WebSocket Hub并订阅事件
	wsHub := web.NewHub()
	go wsHub.Run(ctx)
	if err := wsHub.Pipe(ctx, stack.Broker, services.TopicPredictionCreated, services.TopicMatchesLive); err != nil {
		logger.Fatalf("Failed to subscribe hub: %v", err)
	}

	// 进行中比赛轮询
	go stack.LiveMonitor.Run(ctx)

	// 过期预测清理
	go stack.Cleanup.Run(ctx)

	server := web.NewServer(cfg, web.Services{
		Matches:     stack.Matches,
		Stats:       stack.Stats,
		Predictions: stack.Predictions,
		Highlights:  stack.Highlights,
	}, wsHub)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Web server error: %v", err)
		}
	}()

	logger.Println("Service is running. Press Ctrl+C to stop.")

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("Shutting down service...")

	server.Stop()
	cancel()

	logger.Println("Service stopped")
}
