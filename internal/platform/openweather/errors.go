package openweather

import "errors"

// Common errors returned by the openweather package.
var (
	// ErrMissingAPIKey is returned when the client has no credential to
	// authenticate with.
	ErrMissingAPIKey = errors.New("missing OpenWeather API key")

	// ErrTimeout is returned when the upstream call exceeds its deadline.
	ErrTimeout = errors.New("weather API request timed out")

	// ErrUpstream is returned for transport failures and non-success
	// responses from the weather API.
	ErrUpstream = errors.New("weather API request failed")

	// ErrUnexpectedFormat is returned when a successful response does not
	// match the expected shape.
	ErrUnexpectedFormat = errors.New("unexpected response format from weather API")
)
