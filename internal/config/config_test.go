package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points ENV_FILE at an empty file so a developer's .env never leaks in.
func isolate(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	t.Setenv("ENV_FILE", path)
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "API_NINJAS_KEY", "HOROSCOPE_BASE_URL", "HOROSCOPE_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, "", c.HoroscopeAPIKey)
	assert.Equal(t, "https://api.api-ninjas.com/v1/horoscope", c.HoroscopeBaseURL)
	assert.Equal(t, 10*time.Second, c.HoroscopeTimeout)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("API_NINJAS_KEY", "secret")
	t.Setenv("HOROSCOPE_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", c.HoroscopeAPIKey)
	assert.Equal(t, 3*time.Second, c.HoroscopeTimeout)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoad_FromEnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv("API_NINJAS_KEY")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("API_NINJAS_KEY=from-file\n"), 0o600))
	t.Setenv("ENV_FILE", path)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", c.HoroscopeAPIKey)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad timeout":    {"HOROSCOPE_TIMEOUT", "soon"},
		"zero timeout":   {"HOROSCOPE_TIMEOUT", "0s"},
		"bad level":      {"LOG_LEVEL", "loud"},
		"bad base url":   {"HOROSCOPE_BASE_URL", "not a url"},
		"negative grace": {"SHUTDOWN_TIMEOUT", "-1s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	isolate(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "nope.env"))

	_, err := Load()
	require.Error(t, err)
}
