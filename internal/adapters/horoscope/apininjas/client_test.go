package apininjas_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/adapters/horoscope/apininjas"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

func TestClient_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/horoscope", r.URL.Path)
		assert.Equal(t, "leo", r.URL.Query().Get("zodiac"))
		assert.Equal(t, "tomorrow", r.URL.Query().Get("day"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2026-10-15","sign":"leo","horoscope":"Test text"}`))
	}))
	defer srv.Close()

	client := apininjas.NewClient(srv.Client(), "test-key", srv.URL+"/v1/horoscope/", slog.Default())

	payload, err := client.Fetch(context.Background(), "Leo", "TOMORROW")
	require.NoError(t, err)
	assert.Equal(t, "Test text", payload["horoscope"])
	assert.Equal(t, "leo", payload["sign"])
}

func TestClient_Fetch_PayloadNotValidated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"nothing here"}`))
	}))
	defer srv.Close()

	client := apininjas.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	payload, err := client.Fetch(context.Background(), "aries", "today")
	require.NoError(t, err)
	_, ok := payload["horoscope"]
	assert.False(t, ok)
}

func TestClient_Fetch_UpstreamError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API Key."}`))
	}))
	defer srv.Close()

	client := apininjas.NewClient(srv.Client(), "bad", srv.URL, slog.Default())

	_, err := client.Fetch(context.Background(), "aries", "today")
	require.ErrorIs(t, err, domain.ErrUpstreamHoroscope)
	assert.Equal(t, 1, calls, "no retries expected")
}

func TestClient_Fetch_NotAnObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["horoscope"]`))
	}))
	defer srv.Close()

	client := apininjas.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Fetch(context.Background(), "aries", "today")
	require.ErrorIs(t, err, domain.ErrUpstreamHoroscope)
}

func TestClient_Fetch_NullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	client := apininjas.NewClient(srv.Client(), "key", srv.URL, slog.Default())

	_, err := client.Fetch(context.Background(), "aries", "today")
	require.ErrorIs(t, err, domain.ErrUpstreamHoroscope)
}

func TestClient_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	httpClient := srv.Client()
	httpClient.Timeout = 50 * time.Millisecond
	client := apininjas.NewClient(httpClient, "key", srv.URL, slog.Default())

	_, err := client.Fetch(context.Background(), "aries", "today")
	require.ErrorIs(t, err, domain.ErrUpstreamHoroscope)
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := apininjas.NewClient(&http.Client{Timeout: time.Second}, "key", addr, slog.Default())

	_, err := client.Fetch(context.Background(), "aries", "today")
	require.ErrorIs(t, err, domain.ErrUpstreamHoroscope)
}
