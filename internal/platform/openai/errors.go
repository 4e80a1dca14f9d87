package openai

import "errors"

// Common errors returned by the openai package.
var (
	// ErrMissingAPIKey is returned when the client is constructed without
	// a credential.
	ErrMissingAPIKey = errors.New("missing OpenAI API key")

	// ErrAuthentication is returned when the provider rejects the API key.
	ErrAuthentication = errors.New("invalid OpenAI API key")

	// ErrTimeout is returned when the upstream call exceeds its deadline.
	ErrTimeout = errors.New("OpenAI API request timed out")

	// ErrUpstream is returned for transport failures and non-auth API
	// errors from the provider.
	ErrUpstream = errors.New("OpenAI API request failed")

	// ErrUnexpectedFormat is returned when a successful response carries
	// no usable completion.
	ErrUnexpectedFormat = errors.New("unexpected response format from OpenAI API")
)
