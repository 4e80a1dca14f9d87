package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mpietrzak-dev/vitals-api/internal/api/shared"
)

// CompletionService produces a text completion for a prompt.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompletionHandler proxies prompts to the chat-completion provider.
type CompletionHandler struct {
	completions CompletionService
	logger      *slog.Logger
}

// NewCompletionHandler creates a new CompletionHandler.
func NewCompletionHandler(completions CompletionService, logger *slog.Logger) *CompletionHandler {
	return &CompletionHandler{completions: completions, logger: logger}
}

// Ask handles GET /ask-openai requests.
func (h *CompletionHandler) Ask(w http.ResponseWriter, r *http.Request) {
	q := shared.ParseQuery(r)
	prompt := q.String("request")
	if fields := q.Errors(); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	answer, err := h.completions.Complete(r.Context(), prompt)
	if err != nil {
		h.logger.Error("completion request failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompletionResponse{Response: answer})
}
