package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "HTTP_ADDR", "REDIS_ADDR", "CACHE_TTL", "DEFAULT_MARGIN_PERCENT"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
		assert.Empty(t, cfg.Redis.Addr)
		assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
		assert.True(t, cfg.Shop.DefaultMarginPercent.Equal(decimal.NewFromInt(10)))
	})

	t.Run("значения из окружения", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("HTTP_REQUEST_TIMEOUT", "2s")
		t.Setenv("DEFAULT_MARGIN_PERCENT", "12.5")

		cfg := Load()

		assert.Equal(t, "db", cfg.Database.Host)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, 3, cfg.Redis.DB)
		assert.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
		assert.Equal(t, "12.5", cfg.Shop.DefaultMarginPercent.String())
	})

	t.Run("некорректные значения игнорируются", func(t *testing.T) {
		t.Setenv("REDIS_DB", "abc")
		t.Setenv("CACHE_TTL", "soon")
		t.Setenv("DEFAULT_MARGIN_PERCENT", "ten")

		cfg := Load()

		assert.Equal(t, 0, cfg.Redis.DB)
		assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
		assert.True(t, cfg.Shop.DefaultMarginPercent.Equal(decimal.NewFromInt(10)))
	})
}
