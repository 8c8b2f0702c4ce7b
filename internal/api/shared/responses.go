package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/numconv-api/internal/platform/logger"
	"github.com/phrazzld/numconv-api/internal/redact"
)

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	TraceID  string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a single ErrorEnvelope carrying the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, category, message string) {
	RespondWithJSON(w, r, status, ErrorEnvelope{
		Category: category,
		Message:  message,
		TraceID:  GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes body as an error response and logs err.
// The error text is redacted before logging; it never reaches the client
// through this function.
//
// Log levels: 5xx at ERROR, 4xx at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	body interface{},
	err error,
) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.LogAttrs(r.Context(), level, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, body)
}
