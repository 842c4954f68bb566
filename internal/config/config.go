package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment
// variables.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret    string
	JWTExpiresIn time.Duration

	WeatherAPIKey  string
	WeatherBaseURL string
	WeatherTimeout time.Duration
	FetchDelay     time.Duration

	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string

	ReportsDir string
}

// Load builds Config from environment with sensible defaults. The database
// DSN, token secret and weather API key have no defaults and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		DatabaseDSN:    os.Getenv("SOLAR_SENSE_DATABASE_DSN"),
		JWTSecret:      os.Getenv("SOLAR_SENSE_JWT_SECRET"),
		JWTExpiresIn:   getEnvDuration("SOLAR_SENSE_JWT_EXPIRES_IN", 72*time.Hour),
		WeatherAPIKey:  os.Getenv("SOLAR_SENSE_WEATHER_API_KEY"),
		WeatherBaseURL: os.Getenv("SOLAR_SENSE_WEATHER_BASE_URL"),
		WeatherTimeout: getEnvDuration("SOLAR_SENSE_WEATHER_TIMEOUT", 30*time.Second),
		FetchDelay:     getEnvDuration("SOLAR_SENSE_FETCH_DELAY", 2*time.Second),
		MailHost:       getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:       getEnvInt("MAIL_PORT", 587),
		MailUser:       os.Getenv("MAIL_USER"),
		MailPassword:   os.Getenv("MAIL_PASS"),
		ReportsDir:     getEnv("SOLAR_SENSE_REPORTS_DIR", "public/files"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("SOLAR_SENSE_DATABASE_DSN is required")
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("SOLAR_SENSE_JWT_SECRET is required")
	}

	if cfg.WeatherAPIKey == "" {
		return nil, errors.New("SOLAR_SENSE_WEATHER_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}

	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}

	return def
}
