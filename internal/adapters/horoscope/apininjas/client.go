package apininjas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

const headerAPIKey = "X-Api-Key"

// Client implements ports.HoroscopeFetcher via the API Ninjas horoscope API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *slog.Logger
}

// NewClient builds a client. The request timeout is whatever httpClient
// enforces.
func NewClient(httpClient *http.Client, apiKey, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Fetch makes a single attempt; there are no retries.
func (c *Client) Fetch(ctx context.Context, sign, day string) (domain.HoroscopePayload, error) {
	q := url.Values{}
	q.Set("zodiac", strings.ToLower(sign))
	q.Set("day", strings.ToLower(day))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrUpstreamHoroscope, err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "horoscope request failed", "error", err)
		return nil, fmt.Errorf("%w: http call: %w", domain.ErrUpstreamHoroscope, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "horoscope response unreadable", "error", err)
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrUpstreamHoroscope, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "horoscope API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrUpstreamHoroscope, resp.StatusCode)
	}

	var payload domain.HoroscopePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.WarnContext(ctx, "horoscope response is not a JSON object", "error", err, "body", string(body))
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamHoroscope, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty response", domain.ErrUpstreamHoroscope)
	}

	return payload, nil
}
