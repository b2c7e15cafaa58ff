package api

import (
	"time"

	"goshanten/common/http"
)

// PingHandler ping 检查
func PingHandler(c *http.Context) error {
	c.Success(map[string]interface{}{
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"service":   "shanten",
	})
	return nil
}

// HealthHandler 附带记忆化缓存命中情况
func (h *handlers) HealthHandler(c *http.Context) error {
	c.Success(map[string]interface{}{
		"healthy":   true,
		"cache":     h.analyzer.CacheStats(),
		"timestamp": time.Now().Unix(),
	})
	return nil
}

// NotFoundHandler 未注册的路径
func NotFoundHandler(c *http.Context) error {
	c.NotFound("")
	return nil
}
