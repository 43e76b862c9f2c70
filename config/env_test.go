package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "120-M", cfg.Server.RateLimit)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("UPLOAD_DIR", "/var/lib/uploads")
	t.Setenv("CACHE_ENABLED", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "/var/lib/uploads", cfg.Storage.UploadDir)
	assert.True(t, cfg.Redis.Enabled)
}

func TestDBConfigDSN(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		Name:     "hr",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=hr sslmode=disable",
		db.DSN())
}
