package app

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goshanten/common/http"
	"goshanten/common/log"
	"goshanten/shanten/api"
)

// NewServer 注册中间件与路由，不启动监听
func (a *App) NewServer() *http.HttpServer {
	mode := "release"
	if a.cfg.Log.Level == "debug" {
		mode = "debug"
	}
	server := http.NewHttpServer(
		http.WithPort(a.cfg.HttpPort),
		http.WithMode(mode),
	)

	var limiter *http.RateLimiter
	if a.cfg.RateLimit.Rate > 0 {
		limiter = http.NewRateLimiter(a.cfg.RateLimit.Rate, a.cfg.RateLimit.Burst)
	}
	server.Use(
		http.CorsMiddleware(),
		http.RequestIDMiddleware(),
		http.LoggerMiddleware(),
		http.RateLimitMiddleware(limiter),
	)

	api.RegisterRoutes(server, a)
	return server
}

// Serve 阻塞直到 ctx 结束或收到退出信号
func (a *App) Serve(ctx context.Context) error {
	server := a.NewServer()

	errCh := make(chan error, 1)
	go func() {
		log.Info("启动 HTTP 服务器，端口: %d", a.cfg.HttpPort)
		if err := server.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP 服务器关闭失败: %v", err)
		} else {
			log.Info("HTTP 服务器已优雅关闭")
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	defer signal.Stop(c)
	for {
		select {
		case <-ctx.Done():
			stop()
			return nil
		case err := <-errCh:
			return err
		case s := <-c:
			stop()
			if s == syscall.SIGHUP {
				log.Info("挂起信号，服务停止")
			} else {
				log.Info("中断信号，服务停止")
			}
			return nil
		}
	}
}
