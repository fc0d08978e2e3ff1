package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr         string `validate:"required"`
	LogLevel         slog.Level
	HoroscopeAPIKey  string
	HoroscopeBaseURL string        `validate:"required,url"`
	HoroscopeTimeout time.Duration `validate:"gt=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
}

// Load reads configuration from the environment, after applying an optional
// .env file. A missing API key is not an error: the upstream rejects it.
func Load() (Config, error) {
	if err := loadEnv(); err != nil {
		return Config{}, err
	}

	c := Config{
		HTTPAddr:         envOr("HTTP_ADDR", ":8080"),
		HoroscopeAPIKey:  os.Getenv("API_NINJAS_KEY"),
		HoroscopeBaseURL: envOr("HOROSCOPE_BASE_URL", "https://api.api-ninjas.com/v1/horoscope"),
	}

	var err error
	if c.HoroscopeTimeout, err = durationOr("HOROSCOPE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if c.ShutdownTimeout, err = durationOr("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
