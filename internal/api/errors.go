package api

import (
	"errors"
	"net/http"

	"github.com/mpietrzak-dev/vitals-api/internal/api/shared"
	"github.com/mpietrzak-dev/vitals-api/internal/platform/openai"
	"github.com/mpietrzak-dev/vitals-api/internal/platform/openweather"
	"github.com/mpietrzak-dev/vitals-api/internal/wellness"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This keeps the status policy in one place instead
// of scattered across handlers.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client input errors
	case errors.Is(err, wellness.ErrNonPositiveInput),
		errors.Is(err, wellness.ErrUnknownActivity):
		return http.StatusBadRequest

	// Authentication failure at the completion provider
	case errors.Is(err, openai.ErrAuthentication):
		return http.StatusUnauthorized

	// Upstream deadline exceeded
	case errors.Is(err, openweather.ErrTimeout),
		errors.Is(err, openai.ErrTimeout):
		return http.StatusGatewayTimeout

	// Upstream transport or protocol failure
	case errors.Is(err, openweather.ErrUpstream),
		errors.Is(err, openai.ErrUpstream):
		return http.StatusBadGateway

	// Upstream contract violations and missing credentials
	case errors.Is(err, openweather.ErrUnexpectedFormat),
		errors.Is(err, openai.ErrUnexpectedFormat),
		errors.Is(err, openweather.ErrMissingAPIKey),
		errors.Is(err, openai.ErrMissingAPIKey):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Upstream error text is surfaced for bad-gateway
// failures; everything else collapses to a fixed message so internal detail
// never leaks.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, wellness.ErrNonPositiveInput):
		return err.Error()

	case errors.Is(err, wellness.ErrUnknownActivity):
		return "Invalid activity level. Choose from light, moderate, or vigorous."

	case errors.Is(err, openai.ErrAuthentication):
		return "Invalid OpenAI API key."

	case errors.Is(err, openweather.ErrTimeout):
		return "Weather API request timed out."

	case errors.Is(err, openai.ErrTimeout):
		return "OpenAI API request timed out."

	case errors.Is(err, openweather.ErrUpstream),
		errors.Is(err, openai.ErrUpstream):
		// Upstream error text is surfaced to the caller by policy.
		return "Bad Gateway: " + err.Error()

	case errors.Is(err, openweather.ErrUnexpectedFormat):
		return "Unexpected response format from weather API."

	case errors.Is(err, openai.ErrUnexpectedFormat):
		return "Unexpected response format from OpenAI API."

	case errors.Is(err, openweather.ErrMissingAPIKey):
		return "Missing OpenWeather API key."

	case errors.Is(err, openai.ErrMissingAPIKey):
		return "Missing OpenAI API key."

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err: it resolves the status code
// and safe message, logs the full detail server-side, and sends only the
// sanitized pair to the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
