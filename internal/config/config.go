package config

// Config holds all application configuration.
// It is constructed once at startup and passed into the components that
// need it; nothing reads configuration from ambient globals.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Weather WeatherConfig `mapstructure:"weather" validate:"required"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// WeatherConfig contains the settings for the OpenWeather integration.
type WeatherConfig struct {
	// APIKey authenticates outbound requests to the weather provider.
	// The process refuses to start without it.
	APIKey string `mapstructure:"api_key" validate:"required"`

	// BaseURL is the weather API endpoint prefix. Overridable so tests can
	// point the client at a local server.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// TimeoutSeconds bounds each outbound weather call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// OpenAIConfig contains the settings for the chat-completion integration.
type OpenAIConfig struct {
	// APIKey authenticates outbound requests to the completion provider.
	// The process refuses to start without it.
	APIKey string `mapstructure:"api_key" validate:"required"`

	// Model is the completion model requested for every call.
	Model string `mapstructure:"model" validate:"required"`

	// BaseURL overrides the provider endpoint, primarily for tests.
	// Empty means the provider's default endpoint.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// TimeoutSeconds bounds each outbound completion call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}
