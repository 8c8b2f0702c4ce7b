package service

import "fmt"

// ConversionServiceError reports a service-level failure that is not one of
// the domain or integration error types.
type ConversionServiceError struct {
	Operation string
	Message   string
	Err       error
}

func (e *ConversionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversion service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("conversion service %s failed: %s", e.Operation, e.Message)
}

func (e *ConversionServiceError) Unwrap() error {
	return e.Err
}
