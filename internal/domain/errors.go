package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an inbound request fails validation.
	// ValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedNumber is returned when a validated number string cannot be
	// parsed into the value the target operation expects.
	// MalformedNumberError unwraps to it.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrUnknownChannel is returned when a channel name is not one of the
	// fixed conversion channels.
	ErrUnknownChannel = errors.New("unknown conversion channel")
)
