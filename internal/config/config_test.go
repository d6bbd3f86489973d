package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_BASE_URL", "https://gateway.test")
		t.Setenv("PAYMENT_SERVER_KEY", "server_key")
		t.Setenv("REGION_BASE_URL", "https://region.test")
		t.Setenv("COURIER_BASE_URL", "https://courier.test")
		t.Setenv("COURIER_API_KEY", "courier_key")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, "https://gateway.test", cfg.GatewayBaseURL)
		assert.Equal(t, "server_key", cfg.GatewayServerKey)
		assert.Equal(t, "https://region.test", cfg.RegionBaseURL)
		assert.Equal(t, "https://courier.test", cfg.CourierBaseURL)
		assert.Equal(t, "courier_key", cfg.CourierAPIKey)
	})

	t.Run("Default app port", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("APP_PORT", "")

		cfg := LoadConfig()
		assert.Equal(t, "8080", cfg.AppPort)
	})
}
