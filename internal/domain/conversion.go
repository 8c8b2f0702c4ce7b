package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Bounds on the length of ConversionRequest.Number, counted in characters.
const (
	MinNumberLength = 1
	MaxNumberLength = 10
)

// ConversionRequest is the inbound payload of both conversion endpoints.
type ConversionRequest struct {
	Number string `json:"number" validate:"notblank,min=1,max=10"`
}

// FieldError describes one failed constraint on a request field.
type FieldError struct {
	Field  string
	Reason string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Reason
}

// ValidationError is returned when a request fails validation. It carries one
// FieldError per offending field.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap lets callers match the error with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var validate = newValidator()

// newValidator builds the validator used for requests. Field names are
// reported by their JSON names so clients see "number", not "Number".
func newValidator() *validator.Validate {
	v := validator.New()
	// notblank is not registered by default; the non-standard package provides it.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		// ALLOW-PANIC: registration only fails on an invalid tag name
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks that Number is non-blank and between MinNumberLength and
// MaxNumberLength characters. It returns a *ValidationError on failure.
func (r ConversionRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate conversion request: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:  fe.Field(),
			Reason: reasonForTag(fe.Tag()),
		})
	}
	return out
}

// reasonForTag maps validation tags to the messages returned to clients.
func reasonForTag(tag string) string {
	switch tag {
	case "notblank":
		return "must not be blank"
	case "required":
		return "must not be null"
	case "min", "max":
		return fmt.Sprintf("size must be between %d and %d", MinNumberLength, MaxNumberLength)
	default:
		return "is invalid"
	}
}
