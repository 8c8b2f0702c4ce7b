package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/phrazzld/numconv-api/internal/integration"
	"github.com/phrazzld/numconv-api/internal/platform/soap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeError(t *testing.T) {
	const traceID = "trace-abc123"

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "validation error",
			err:            domain.NewValidationError("number", "must not be blank"),
			expectedStatus: http.StatusBadRequest,
			expectedBody: []ErrorEnvelope{
				{Category: CategoryValidation, Message: "number: must not be blank", TraceID: traceID},
			},
		},
		{
			name:           "wrapped validation error",
			err:            fmt.Errorf("convert: %w", domain.NewValidationError("number", "size must be between 1 and 10")),
			expectedStatus: http.StatusBadRequest,
			expectedBody: []ErrorEnvelope{
				{Category: CategoryValidation, Message: "number: size must be between 1 and 10", TraceID: traceID},
			},
		},
		{
			name:           "unknown JSON field",
			err:            &MalformedJSONError{Err: errors.New(`json: unknown field "numbr"`)},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorEnvelope{Category: CategoryJSONParse, Message: "Unrecognized field: numbr", TraceID: traceID},
		},
		{
			name:           "JSON syntax error",
			err:            &MalformedJSONError{Err: errors.New("unexpected EOF")},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorEnvelope{Category: CategoryJSONParse, Message: "unexpected EOF", TraceID: traceID},
		},
		{
			name:           "malformed number",
			err:            &domain.MalformedNumberError{Input: "12a", Kind: "decimal"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorEnvelope{Category: CategoryMalformedNumber, Message: `"12a" is not a valid decimal`, TraceID: traceID},
		},
		{
			name: "integration error redacts cause",
			err: integration.NewIntegrationError(domain.ChannelNumberToWords, integration.StepCallingExternalService,
				errors.New(`Post "https://www.dataaccess.com/webservicesserver/numberconversion.wso": dial tcp 10.1.2.3:443: i/o timeout`)),
			expectedStatus: http.StatusInternalServerError,
			expectedBody: ErrorEnvelope{
				Category: CategoryIntegration,
				Message:  `Error occurred while calling-external-service: Post "[REDACTED_URL]": dial tcp [REDACTED_ADDR]: i/o timeout`,
				TraceID:  traceID,
			},
		},
		{
			name: "integration fault keeps service type names",
			err: integration.NewIntegrationError(domain.ChannelNumberToWords, integration.StepCallingExternalService,
				&soap.FaultError{Fault: soap.Fault{
					Code:   "soap:Client",
					String: "System.FormatException: Input string '-5' was not in a correct format. See http://10.0.0.9/help",
				}, StatusCode: http.StatusInternalServerError}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody: ErrorEnvelope{
				Category: CategoryIntegration,
				Message:  "Error occurred while calling-external-service: soap fault soap:Client: System.FormatException: Input string '-5' was not in a correct format. See [REDACTED_URL]",
				TraceID:  traceID,
			},
		},
		{
			name:           "integration error without cause",
			err:            &integration.IntegrationError{Channel: domain.ChannelNumberToDollars, Step: integration.StepParsingResponse},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: ErrorEnvelope{
				Category: CategoryIntegration,
				Message:  "Error occurred while parsing-response: unknown integration failure",
				TraceID:  traceID,
			},
		},
		{
			name:           "unclassified error",
			err:            errors.New("database password=hunter2 leaked"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrorEnvelope{Category: CategoryInternal, Message: "An unexpected error occurred", TraceID: traceID},
		},
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrorEnvelope{Category: CategoryInternal, Message: "An unexpected error occurred", TraceID: traceID},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := NormalizeError(tc.err, traceID)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestNormalizeError_OmitsEmptyTraceID(t *testing.T) {
	_, body := NormalizeError(errors.New("x"), "")
	env, ok := body.(ErrorEnvelope)
	require.True(t, ok)
	assert.Empty(t, env.TraceID)
}

func TestMalformedJSONError_UnrecognizedField(t *testing.T) {
	field, ok := (&MalformedJSONError{Err: errors.New(`json: unknown field "extra"`)}).UnrecognizedField()
	assert.True(t, ok)
	assert.Equal(t, "extra", field)

	_, ok = (&MalformedJSONError{Err: errors.New("invalid character 'x'")}).UnrecognizedField()
	assert.False(t, ok)

	assert.Equal(t, "malformed JSON request body", (&MalformedJSONError{}).Error())
}
