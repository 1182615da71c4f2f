package cache

import (
	"testing"

	"github.com/send-logistics/internal/config"
)

func TestInitRedisDisabled(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("redis should be disabled")
	}
	if Client() != nil {
		t.Fatalf("client should be nil when disabled")
	}
}

func TestKey(t *testing.T) {
	old := redisPrefix
	t.Cleanup(func() { redisPrefix = old })

	redisPrefix = "sb"
	if got := Key("login", " 13800138000|1.2.3.4 "); got != "sb:login:13800138000|1.2.3.4" {
		t.Fatalf("unexpected key: %s", got)
	}
	redisPrefix = ""
	if got := Key("login", "", "x"); got != "login:x" {
		t.Fatalf("unexpected key without prefix: %s", got)
	}
}
