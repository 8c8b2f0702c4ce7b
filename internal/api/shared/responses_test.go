package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/numconv-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]string{"numberToWordsResult": "five"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"numberToWordsResult":"five"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	ctx := context.WithValue(req.Context(), TraceIDKey, "trace-1234567")
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Not found", "No route for GET /missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, ErrorEnvelope{Category: "Not found", Message: "No route for GET /missing", TraceID: "trace-1234567"}, env)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{"server error logs at error", http.StatusInternalServerError, "ERROR"},
		{"client error logs at debug", http.StatusBadRequest, "DEBUG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/api/number-conversion/convertNumberToWords", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			w := httptest.NewRecorder()

			cause := errors.New(`Post "http://10.0.0.5:8080/svc": dial tcp 10.0.0.5:8080: connect: connection refused`)
			RespondWithErrorAndLog(w, req, tc.status, ErrorEnvelope{Category: "c", Message: "m"}, cause)

			assert.Equal(t, tc.status, w.Code)

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.expectedLevel, entries[0]["level"])
			assert.Equal(t, float64(tc.status), entries[0]["status_code"])

			logged, _ := entries[0]["error"].(string)
			assert.NotContains(t, logged, "10.0.0.5")
			assert.Contains(t, logged, "connection refused")
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}
