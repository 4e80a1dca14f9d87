package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mpietrzak-dev/vitals-api/internal/config"
)

// maxErrorBodyBytes caps how much of an upstream error body is read into an
// error message.
const maxErrorBodyBytes = 4 << 10

// Conditions holds the subset of the upstream payload exposed to callers.
type Conditions struct {
	City        string
	Temperature float64
	Description string
}

// currentWeatherResponse mirrors the parts of the OpenWeather payload the
// client extracts. Pointer and slice fields distinguish a missing section
// from a zero value.
type currentWeatherResponse struct {
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Client calls the OpenWeather current conditions endpoint.
type Client struct {
	logger     *slog.Logger
	config     config.WeatherConfig
	httpClient *http.Client
}

// NewClient creates a weather client from the provided configuration.
// The underlying HTTP client carries the configured timeout so every call
// is bounded even when the caller's context has no deadline.
func NewClient(logger *slog.Logger, cfg config.WeatherConfig) *Client {
	return &Client{
		logger: logger,
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// CurrentConditions fetches the current weather for a city in metric units.
//
// Failure mapping:
//   - deadline exceeded -> ErrTimeout
//   - transport errors and non-2xx responses -> ErrUpstream (with upstream text)
//   - undecodable or incomplete body -> ErrUnexpectedFormat
func (c *Client) CurrentConditions(ctx context.Context, city string) (*Conditions, error) {
	if c.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := url.Parse(c.config.BaseURL + "/weather")
	if err != nil {
		return nil, fmt.Errorf("invalid weather base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.config.APIKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.ErrorContext(ctx, "weather API request timed out", "city", city)
			return nil, fmt.Errorf("%w: city %q", ErrTimeout, city)
		}
		c.logger.ErrorContext(ctx, "weather API request failed", "city", city, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close weather response body", "error", cerr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.ErrorContext(ctx, "weather API returned non-success status",
			"city", city,
			"status", resp.StatusCode,
			"body", string(body))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.ErrorContext(ctx, "failed to decode weather API response", "city", city, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if payload.Main == nil || len(payload.Weather) == 0 {
		c.logger.ErrorContext(ctx, "weather API response missing expected sections",
			"city", city,
			"has_main", payload.Main != nil,
			"weather_entries", len(payload.Weather))
		return nil, fmt.Errorf("%w: missing main or weather section", ErrUnexpectedFormat)
	}

	return &Conditions{
		City:        city,
		Temperature: payload.Main.Temp,
		Description: payload.Weather[0].Description,
	}, nil
}

// isTimeout reports whether err represents an exceeded deadline, either from
// the request context or the HTTP client's own timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
