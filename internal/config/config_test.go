package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, "./media", cfg.MediaDir)
	assert.Equal(t, "Administrator", cfg.AdminName)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "24h")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "https://example.com")
	t.Setenv("REDIS_DB", "3")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "https://example.com", cfg.CORSOrigin)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "root", DBPassword: "pass", DBHost: "db", DBPort: "3306", DBName: "writer"}
	assert.Equal(t, "root:pass@tcp(db:3306)/writer?parseTime=true", cfg.DSN())
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "soon")
	cfg := LoadConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
}
