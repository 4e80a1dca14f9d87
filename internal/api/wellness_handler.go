package api

import (
	"log/slog"
	"net/http"

	"github.com/mpietrzak-dev/vitals-api/internal/api/shared"
	"github.com/mpietrzak-dev/vitals-api/internal/wellness"
)

// WellnessHandler handles the pure computation endpoints: BMI, calories,
// hydration, and sleep score. It has no collaborators beyond the logger.
type WellnessHandler struct {
	logger *slog.Logger
}

// NewWellnessHandler creates a new WellnessHandler.
func NewWellnessHandler(logger *slog.Logger) *WellnessHandler {
	return &WellnessHandler{logger: logger}
}

// BMI handles GET /bmi requests.
func (h *WellnessHandler) BMI(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseQuery(r)
	weight := q.Float("weight")
	height := q.Float("height")
	if fields := q.Errors(); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	bmi, err := wellness.BMI(weight, height)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BMIResponse{BMI: bmi})
}

// Calories handles GET /calories requests.
func (h *WellnessHandler) Calories(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseQuery(r)
	weight := q.Float("weight")
	duration := q.Float("duration")
	activityLevel := q.String("activity_level")
	if fields := q.Errors(); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	calories, err := wellness.CaloriesBurned(weight, duration, activityLevel)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaloriesResponse{CaloriesBurned: calories})
}

// Hydration handles GET /hydration requests.
func (h *WellnessHandler) Hydration(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseQuery(r)
	waterML := q.Int("water_ml")
	if fields := q.Errors(); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	status := wellness.Hydration(waterML)
	shared.RespondWithJSON(w, r, http.StatusOK, HydrationResponse{
		Status: status.Status,
		Advice: status.Advice,
	})
}

// SleepScore handles GET /sleep-score requests.
func (h *WellnessHandler) SleepScore(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseQuery(r)
	hours := q.Float("hours")
	if fields := q.Errors(); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	assessment := wellness.SleepScore(hours)
	shared.RespondWithJSON(w, r, http.StatusOK, SleepScoreResponse{
		Score:  assessment.Score,
		Status: assessment.Status,
	})
}
