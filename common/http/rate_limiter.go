package http

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter 令牌桶限流
type RateLimiter struct {
	rate       float64
	capacity   float64
	tokens     float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

// NewRateLimiter rate 为每秒补充的令牌数，burst 为桶容量
func NewRateLimiter(rate int, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		rate:     float64(rate),
		capacity: float64(burst),
		tokens:   float64(burst),
		now:      time.Now,
	}
	rl.lastRefill = rl.now()
	return rl
}

// Allow 有令牌时消耗一个并放行
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens = min(rl.capacity, rl.tokens+elapsed*rl.rate)
	rl.lastRefill = now

	if rl.tokens >= 1.0 {
		rl.tokens -= 1.0
		return true
	}
	return false
}

// RateLimitMiddleware 超出限流返回 429；limiter 为 nil 时不限流
func RateLimitMiddleware(limiter *RateLimiter) MiddlewareFunc {
	return func(c *Context) error {
		if limiter == nil || limiter.Allow() {
			return nil
		}
		c.AbortWithJSON(http.StatusTooManyRequests, NewResponse(CodeTooManyRequests, MsgTooManyRequests, nil))
		return nil
	}
}
