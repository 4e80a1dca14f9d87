package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mpietrzak-dev/vitals-api/internal/api"
	apiMiddleware "github.com/mpietrzak-dev/vitals-api/internal/api/middleware"
	"github.com/mpietrzak-dev/vitals-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Cross-origin requests are permitted from any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics)

	// Create API handlers using the application's clients
	wellnessHandler := api.NewWellnessHandler(app.logger)
	weatherHandler := api.NewWeatherHandler(app.weatherClient, app.logger)
	completionHandler := api.NewCompletionHandler(app.openaiClient, app.logger)

	// Register routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.MessageResponse{
			Message: "Hello from the vitals API!",
		})
	})
	r.Get("/bmi", wellnessHandler.BMI)
	r.Get("/calories", wellnessHandler.Calories)
	r.Get("/hydration", wellnessHandler.Hydration)
	r.Get("/sleep-score", wellnessHandler.SleepScore)
	r.Get("/weather", weatherHandler.Current)
	r.Get("/ask-openai", completionHandler.Ask)

	// Operational endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
