// Package main implements the entry point for the vitals API server, a
// small HTTP service exposing health calculations (BMI, calories,
// hydration, sleep score) and thin proxies to external weather and
// chat-completion providers.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mpietrzak-dev/vitals-api/internal/config"
	"github.com/mpietrzak-dev/vitals-api/internal/platform/logger"
	"github.com/mpietrzak-dev/vitals-api/internal/platform/openai"
	"github.com/mpietrzak-dev/vitals-api/internal/platform/openweather"
)

// application holds the fully wired dependencies for the server. Everything
// is constructed once in initializeApp and injected; nothing reads
// configuration or credentials from ambient globals afterwards.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	weatherClient *openweather.Client
	openaiClient  *openai.Client
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and constructs the
// outbound API clients. A missing credential surfaces here, before the
// server ever binds a port.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Weather configuration", "api_key_present", cfg.Weather.APIKey != "")
	slog.Debug("OpenAI configuration",
		"api_key_present", cfg.OpenAI.APIKey != "",
		"model", cfg.OpenAI.Model)

	weatherClient := openweather.NewClient(appLogger, cfg.Weather)

	openaiClient, err := openai.NewClient(appLogger, cfg.OpenAI)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        appLogger,
		weatherClient: weatherClient,
		openaiClient:  openaiClient,
	}, nil
}
