package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "QUEUE_DRIVER", "REFUND_ON_PROVIDER_FAILURE", "MOCK_AD_MIN_DELAY", "GENERATION_RATE_BURST", "DB_MAX_CONNS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Same(t, AppConfig, cfg)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "redis", cfg.Queue.Driver)
	assert.False(t, cfg.Policy.RefundOnProviderFailure)
	assert.Equal(t, 5*time.Second, cfg.Providers.MockAdMinDelay)
	assert.Equal(t, 3, cfg.RateLimit.GenerationBurst)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("REFUND_ON_PROVIDER_FAILURE", "true")
	t.Setenv("MOCK_AD_MIN_DELAY", "250ms")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.True(t, cfg.Policy.RefundOnProviderFailure)
	assert.Equal(t, 250*time.Millisecond, cfg.Providers.MockAdMinDelay)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadConfig_InvalidValuePanics(t *testing.T) {
	t.Setenv("REFUND_ON_PROVIDER_FAILURE", "sometimes")

	assert.Panics(t, func() { LoadConfig() })
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig()

	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "memory", cfg.Queue.Driver)
}

func TestConnectionStrings(t *testing.T) {
	cfg := LoadTestConfig()

	assert.Equal(t, "host=localhost port=5433 user=postgres password=postgres dbname=test_db sslmode=disable timezone=UTC", cfg.Database.DSN())
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
}
