package cache

import (
	"testing"
	"time"
)

func TestNewGeneralCache_RejectsNonPositiveCost(t *testing.T) {
	if _, err := NewGeneralCache(0, time.Minute); err == nil {
		t.Fatalf("expected error for zero max cost")
	}
}

func TestGeneralCache_MissThenStats(t *testing.T) {
	c, err := NewGeneralCache(1<<10, time.Minute)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("absent"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	if got := c.Stats().Misses; got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
}

func TestGeneralCache_SetEventuallyVisible(t *testing.T) {
	c, err := NewGeneralCache(1<<10, time.Minute)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	defer c.Close()

	// ristretto 异步写入，轮询等待
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		c.Set("k", 3)
		time.Sleep(10 * time.Millisecond)
		if v, ok := c.Get("k"); ok {
			if v.(int) != 3 {
				t.Fatalf("expected 3, got %v", v)
			}
			c.Delete("k")
			return
		}
	}
	t.Fatalf("value never became visible")
}
