package integration

import (
	"errors"
	"fmt"

	"github.com/phrazzld/numconv-api/internal/domain"
)

// Step labels the stage of an external exchange that failed.
type Step string

const (
	// StepValidatingInput completes the set of step labels. The dispatcher
	// never produces it: invalid input is rejected before any exchange and
	// reported as *domain.ValidationError.
	StepValidatingInput        Step = "validating-input"
	StepTranslatingRequest     Step = "translating-request"
	StepCallingExternalService Step = "calling-external-service"
	StepParsingResponse        Step = "parsing-response"
)

func (s Step) String() string {
	return string(s)
}

var (
	// ErrUnsupportedValue is the cause when a handler receives a value of the
	// wrong type for its channel.
	ErrUnsupportedValue = errors.New("unsupported request value for channel")

	// errUnknownFailure stands in for a missing cause.
	errUnknownFailure = errors.New("unknown integration failure")
)

// IntegrationError reports a failed exchange with the external service.
type IntegrationError struct {
	Channel domain.Channel
	Step    Step
	Cause   error
}

// NewIntegrationError builds an IntegrationError, substituting a generic
// cause when cause is nil.
func NewIntegrationError(channel domain.Channel, step Step, cause error) *IntegrationError {
	if cause == nil {
		cause = errUnknownFailure
	}
	return &IntegrationError{Channel: channel, Step: step, Cause: cause}
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration %s failed while %s: %v", e.Channel, e.Step, e.CauseMessage())
}

// CauseMessage returns the cause text, or "unknown integration failure" when
// there is no cause.
func (e *IntegrationError) CauseMessage() string {
	if e.Cause == nil {
		return errUnknownFailure.Error()
	}
	return e.Cause.Error()
}

func (e *IntegrationError) Unwrap() error {
	return e.Cause
}
