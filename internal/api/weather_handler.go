package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mpietrzak-dev/vitals-api/internal/api/shared"
	"github.com/mpietrzak-dev/vitals-api/internal/platform/openweather"
)

// WeatherService fetches current conditions for a city.
type WeatherService interface {
	CurrentConditions(ctx context.Context, city string) (*openweather.Conditions, error)
}

// WeatherHandler proxies weather lookups to the upstream provider.
type WeatherHandler struct {
	weather WeatherService
	logger  *slog.Logger
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(weather WeatherService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, logger: logger}
}

// Current handles GET /weather requests.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseQuery(r)
	city := q.String("city")
	if fields := q.Errors(); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	conditions, err := h.weather.CurrentConditions(r.Context(), city)
	if err != nil {
		h.logger.Error("failed to fetch weather data",
			"city", city,
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WeatherResponse{
		City:        conditions.City,
		Temperature: conditions.Temperature,
		Description: conditions.Description,
	})
}
