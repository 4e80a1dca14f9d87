package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mpietrzak-dev/vitals-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWellnessHandler() *WellnessHandler {
	return NewWellnessHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWellnessHandler_BMI(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedBMI    float64
		expectedFields []string
	}{
		{
			name:           "height in centimeters",
			target:         "/bmi?weight=70&height=175",
			expectedStatus: http.StatusOK,
			expectedBMI:    22.86,
		},
		{
			name:           "height in meters",
			target:         "/bmi?weight=70&height=1.75",
			expectedStatus: http.StatusOK,
			expectedBMI:    22.86,
		},
		{
			name:           "zero weight rejected",
			target:         "/bmi?weight=0&height=175",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative height rejected",
			target:         "/bmi?weight=70&height=-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing parameters yield per-field errors",
			target:         "/bmi",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedFields: []string{"weight", "height"},
		},
		{
			name:           "non-numeric weight yields field error",
			target:         "/bmi?weight=heavy&height=175",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedFields: []string{"weight"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestWellnessHandler().BMI(w, httptest.NewRequest("GET", tc.target, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)

			switch tc.expectedStatus {
			case http.StatusOK:
				var body BMIResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.InDelta(t, tc.expectedBMI, body.BMI, 0.001)
			case http.StatusUnprocessableEntity:
				var body shared.ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				var fields []string
				for _, fe := range body.Detail {
					fields = append(fields, fe.Field)
				}
				assert.ElementsMatch(t, tc.expectedFields, fields)
			}
		})
	}
}

func TestWellnessHandler_Calories(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		expectedStatus   int
		expectedCalories float64
	}{
		{
			name:             "moderate activity",
			target:           "/calories?weight=70&duration=30&activity_level=moderate",
			expectedStatus:   http.StatusOK,
			expectedCalories: 175,
		},
		{
			name:           "unknown activity level rejected",
			target:         "/calories?weight=70&duration=30&activity_level=extreme",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero duration rejected",
			target:         "/calories?weight=70&duration=0&activity_level=light",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing activity level yields field error",
			target:         "/calories?weight=70&duration=30",
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestWellnessHandler().Calories(w, httptest.NewRequest("GET", tc.target, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var body CaloriesResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.InDelta(t, tc.expectedCalories, body.CaloriesBurned, 0.001)
			}
		})
	}
}

func TestWellnessHandler_CaloriesErrorMessage(t *testing.T) {
	w := httptest.NewRecorder()
	newTestWellnessHandler().Calories(w,
		httptest.NewRequest("GET", "/calories?weight=70&duration=30&activity_level=extreme", nil))

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "light, moderate, or vigorous")
}

func TestWellnessHandler_Hydration(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "below threshold",
			target:         "/hydration?water_ml=1999",
			expectedStatus: http.StatusOK,
			expectedBody:   "Drink more water!",
		},
		{
			name:           "well hydrated",
			target:         "/hydration?water_ml=2500",
			expectedStatus: http.StatusOK,
			expectedBody:   "You're well hydrated!",
		},
		{
			name:           "above threshold",
			target:         "/hydration?water_ml=3001",
			expectedStatus: http.StatusOK,
			expectedBody:   "Too much water!",
		},
		{
			name:           "non-integer intake yields field error",
			target:         "/hydration?water_ml=lots",
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestWellnessHandler().Hydration(w, httptest.NewRequest("GET", tc.target, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var body HydrationResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tc.expectedBody, body.Status)
				assert.NotEmpty(t, body.Advice)
			}
		})
	}
}

func TestWellnessHandler_SleepScore(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedScore  int
	}{
		{name: "short sleep", target: "/sleep-score?hours=5", expectedStatus: http.StatusOK, expectedScore: 50},
		{name: "healthy sleep", target: "/sleep-score?hours=7", expectedStatus: http.StatusOK, expectedScore: 90},
		{name: "long sleep", target: "/sleep-score?hours=9", expectedStatus: http.StatusOK, expectedScore: 70},
		{name: "missing hours yields field error", target: "/sleep-score", expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestWellnessHandler().SleepScore(w, httptest.NewRequest("GET", tc.target, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var body SleepScoreResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tc.expectedScore, body.Score)
				assert.NotEmpty(t, body.Status)
			}
		})
	}
}
