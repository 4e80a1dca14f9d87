package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "ok"}`, w.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(SetTraceID(r.Context()))

	RespondWithError(w, r, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bad input", body.Error)
	assert.Equal(t, GetTraceID(r.Context()), body.TraceID)
}

func TestRespondWithValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	RespondWithValidationErrors(w, r, []FieldError{
		{Field: "weight", Message: "is required"},
		{Field: "height", Message: "must be a number"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Detail, 2)
	assert.Equal(t, "weight", body.Detail[0].Field)
	assert.Equal(t, "must be a number", body.Detail[1].Message)
}

func TestRespondWithErrorAndLogSanitizesMessage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
		"An unexpected error occurred", errors.New("connection refused to 10.0.0.5:5432"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
	assert.NotContains(t, w.Body.String(), "10.0.0.5", "raw error detail must never reach the client")
}

func TestTraceIDRoundTrip(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	assert.Empty(t, GetTraceID(r.Context()), "context without trace ID should yield empty string")

	ctx := SetTraceID(r.Context())
	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(r.Context())), "trace IDs should be unique")
}
