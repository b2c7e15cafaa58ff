package api

import (
	"goshanten/common/cache"
	"goshanten/common/http"
	"goshanten/framework/mahjong"
)

// Analyzer 路由依赖的计算能力
type Analyzer interface {
	Searcher() *mahjong.Searcher
	HandSize() int
	NewPool(seed uint64) (*mahjong.Pool, uint64)
	CacheStats() cache.Stats
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(server *http.HttpServer, analyzer Analyzer) {
	h := &handlers{analyzer: analyzer}

	server.GET("/ping", PingHandler)
	server.GET("/health", h.HealthHandler)
	server.NoRoute(NotFoundHandler)

	v1 := server.Group("/api/v1")
	{
		v1.POST("/shanten", h.ShantenHandler)
		v1.GET("/deal", h.DealHandler)
	}
}
