package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SOLAR_SENSE_DATABASE_DSN", "host=localhost user=solar dbname=solarsense")
	t.Setenv("SOLAR_SENSE_JWT_SECRET", "secret")
	t.Setenv("SOLAR_SENSE_WEATHER_API_KEY", "key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 2*time.Second, cfg.FetchDelay)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, "public/files", cfg.ReportsDir)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SOLAR_SENSE_JWT_EXPIRES_IN", "24h")
	t.Setenv("SOLAR_SENSE_FETCH_DELAY", "50ms")
	t.Setenv("MAIL_PORT", "2525")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 50*time.Millisecond, cfg.FetchDelay)
	assert.Equal(t, 2525, cfg.MailPort)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SOLAR_SENSE_DATABASE_DSN", "")
	t.Setenv("SOLAR_SENSE_JWT_SECRET", "secret")
	t.Setenv("SOLAR_SENSE_WEATHER_API_KEY", "key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLAR_SENSE_DATABASE_DSN")
}
