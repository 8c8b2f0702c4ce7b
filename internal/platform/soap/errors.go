package soap

import (
	"errors"
	"fmt"
)

// Stage names the part of a call that failed.
type Stage string

const (
	// StageEncode covers building and marshalling the request envelope.
	StageEncode Stage = "encode-request"
	// StageTransport covers the HTTP round trip, non-2xx statuses and SOAP faults.
	StageTransport Stage = "transport"
	// StageDecode covers reading and unmarshalling the response.
	StageDecode Stage = "decode-response"
)

var (
	// ErrEmptyBody is returned when the response envelope has no body content.
	ErrEmptyBody = errors.New("empty SOAP body")

	// ErrInvalidConfig is returned by NewClient for unusable settings.
	ErrInvalidConfig = errors.New("invalid SOAP client configuration")
)

// CallError wraps any failure of a SOAP operation.
type CallError struct {
	Operation string
	Stage     Stage
	Err       error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("soap %s: %s: %v", e.Operation, e.Stage, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// FaultError is returned when the service answers with a SOAP fault.
type FaultError struct {
	Fault Fault
	// StatusCode is the HTTP status the fault arrived with.
	StatusCode int
}

func (e *FaultError) Error() string {
	if e.Fault.Code == "" {
		return fmt.Sprintf("soap fault: %s", e.Fault.String)
	}
	return fmt.Sprintf("soap fault %s: %s", e.Fault.Code, e.Fault.String)
}

// HTTPStatusError captures non-2xx responses that did not carry a SOAP fault.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
