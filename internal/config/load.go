package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default endpoint for the weather provider. Tests override it through
// VITALS_WEATHER_BASE_URL.
const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Load reads configuration from environment variables with the VITALS_
// prefix, applies defaults, and validates the result. The two upstream
// credentials are also accepted under their legacy names (OPENWEATHER_KEY,
// OPENAI_API_KEY) so existing deployments keep working.
//
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("weather.base_url", defaultWeatherBaseURL)
	v.SetDefault("weather.timeout_seconds", 10)
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.timeout_seconds", 10)

	v.SetEnvPrefix("VITALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind every key explicitly so env-only values without defaults are
	// visible to Unmarshal.
	bindings := map[string][]string{
		"server.port":             {"VITALS_SERVER_PORT"},
		"server.log_level":        {"VITALS_SERVER_LOG_LEVEL"},
		"weather.api_key":         {"VITALS_WEATHER_API_KEY", "OPENWEATHER_KEY"},
		"weather.base_url":        {"VITALS_WEATHER_BASE_URL"},
		"weather.timeout_seconds": {"VITALS_WEATHER_TIMEOUT_SECONDS"},
		"openai.api_key":          {"VITALS_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"openai.model":            {"VITALS_OPENAI_MODEL"},
		"openai.base_url":         {"VITALS_OPENAI_BASE_URL"},
		"openai.timeout_seconds":  {"VITALS_OPENAI_TIMEOUT_SECONDS"},
	}
	for key, envVars := range bindings {
		args := append([]string{key}, envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
