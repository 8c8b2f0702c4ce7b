package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/phrazzld/numconv-api/internal/api/shared"
	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/phrazzld/numconv-api/internal/integration"
	"github.com/phrazzld/numconv-api/internal/platform/soap"
	"github.com/phrazzld/numconv-api/internal/redact"
)

// Error categories reported in ErrorEnvelope.Category.
const (
	CategoryValidation       = "Validation error"
	CategoryJSONParse        = "JSON parse error"
	CategoryMalformedNumber  = "Malformed number"
	CategoryIntegration      = "Integration request error"
	CategoryInternal         = "Internal error"
	CategoryNotFound         = "Not found"
	CategoryMethodNotAllowed = "Method not allowed"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// ErrorEnvelope is the body of an error response.
type ErrorEnvelope = shared.ErrorEnvelope

// MalformedJSONError reports a request body that could not be decoded.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	if e.Err == nil {
		return "malformed JSON request body"
	}
	return e.Err.Error()
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

var unknownFieldPattern = regexp.MustCompile(`unknown field "([^"]*)"`)

// UnrecognizedField returns the name of the unknown field that made decoding
// fail, if that was the reason.
func (e *MalformedJSONError) UnrecognizedField() (string, bool) {
	m := unknownFieldPattern.FindStringSubmatch(e.Error())
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeError maps err to an HTTP status and response body. Validation
// failures produce a list of envelopes, one per field; everything else
// produces a single envelope. Unrecognized errors never leak their text.
func NormalizeError(err error, traceID string) (int, interface{}) {
	var (
		validationErr  *domain.ValidationError
		jsonErr        *MalformedJSONError
		numberErr      *domain.MalformedNumberError
		integrationErr *integration.IntegrationError
	)

	switch {
	case errors.As(err, &validationErr):
		envelopes := make([]ErrorEnvelope, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			envelopes = append(envelopes, ErrorEnvelope{
				Category: CategoryValidation,
				Message:  f.String(),
				TraceID:  traceID,
			})
		}
		return http.StatusBadRequest, envelopes

	case errors.As(err, &jsonErr):
		message := jsonErr.Error()
		if field, ok := jsonErr.UnrecognizedField(); ok {
			message = "Unrecognized field: " + field
		}
		return http.StatusBadRequest, ErrorEnvelope{
			Category: CategoryJSONParse,
			Message:  message,
			TraceID:  traceID,
		}

	case errors.As(err, &numberErr):
		return http.StatusBadRequest, ErrorEnvelope{
			Category: CategoryMalformedNumber,
			Message:  numberErr.Error(),
			TraceID:  traceID,
		}

	case errors.As(err, &integrationErr):
		return http.StatusInternalServerError, ErrorEnvelope{
			Category: CategoryIntegration,
			Message: fmt.Sprintf("Error occurred while %s: %s",
				integrationErr.Step, redactCause(integrationErr)),
			TraceID: traceID,
		}

	default:
		return http.StatusInternalServerError, ErrorEnvelope{
			Category: CategoryInternal,
			Message:  unexpectedErrorMessage,
			TraceID:  traceID,
		}
	}
}

// RespondWithNormalizedError normalizes err, logs it and writes the response.
func RespondWithNormalizedError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := NormalizeError(err, shared.GetTraceID(r.Context()))
	shared.RespondWithErrorAndLog(w, r, status, body, err)
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, CategoryNotFound,
		fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed answers requests whose route exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, CategoryMethodNotAllowed,
		fmt.Sprintf("Method %s is not supported for %s", r.Method, r.URL.Path))
}

// redactCause scrubs the cause of an integration failure. Fault strings are
// written by the remote service and keep their dotted type names.
func redactCause(err *integration.IntegrationError) string {
	var faultErr *soap.FaultError
	if errors.As(err.Cause, &faultErr) {
		return redact.Message(err.CauseMessage())
	}
	return redact.String(err.CauseMessage())
}
