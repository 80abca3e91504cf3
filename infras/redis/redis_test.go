package redis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tzconv/config"
	"tzconv/infras/redis"
)

func TestNewWithoutRateLimiter(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "127.0.0.1"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.DB = 2

	client := redis.New(cfg)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, "127.0.0.1:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
}
