package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/mpietrzak-dev/vitals-api/internal/config"
)

// Client wraps the OpenAI SDK for single-turn chat completions.
type Client struct {
	logger *slog.Logger
	config config.OpenAIConfig
	api    *goopenai.Client
}

// NewClient creates a completion client from the provided configuration.
// It fails fast when the credential is absent so a misconfigured process
// never serves requests that cannot succeed.
func NewClient(logger *slog.Logger, cfg config.OpenAIConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	apiConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}
	apiConfig.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	return &Client{
		logger: logger,
		config: cfg,
		api:    goopenai.NewClientWithConfig(apiConfig),
	}, nil
}

// Complete sends the prompt as a single user message and returns the text
// of the first completion choice.
//
// Failure mapping:
//   - provider rejects the credential -> ErrAuthentication
//   - deadline exceeded -> ErrTimeout
//   - any other API or transport failure -> ErrUpstream
//   - success without a usable choice -> ErrUnexpectedFormat
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *goopenai.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized:
			c.logger.ErrorContext(ctx, "OpenAI API rejected the credential")
			return "", fmt.Errorf("%w: %s", ErrAuthentication, apiErr.Message)
		case isTimeout(err):
			c.logger.ErrorContext(ctx, "OpenAI API call timed out", "model", c.config.Model)
			return "", fmt.Errorf("%w: model %s", ErrTimeout, c.config.Model)
		default:
			c.logger.ErrorContext(ctx, "OpenAI API call failed", "model", c.config.Model, "error", err)
			return "", fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.ErrorContext(ctx, "OpenAI API response has no usable completion",
			"model", c.config.Model,
			"choices", len(resp.Choices))
		return "", fmt.Errorf("%w: no completion choices in response", ErrUnexpectedFormat)
	}

	return resp.Choices[0].Message.Content, nil
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
