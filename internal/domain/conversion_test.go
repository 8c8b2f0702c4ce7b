package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		wantReason string
	}{
		{name: "single digit", number: "5"},
		{name: "ten characters", number: "1234567890"},
		{name: "signed", number: "-123"},
		{name: "non numeric passes validation", number: "12a"},
		{name: "ten multibyte characters", number: strings.Repeat("é", 10)},
		{name: "empty", number: "", wantReason: "must not be blank"},
		{name: "whitespace only", number: "   ", wantReason: "must not be blank"},
		{name: "eleven characters", number: "12345678901", wantReason: "size must be between 1 and 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConversionRequest{Number: tt.number}.Validate()

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "error should unwrap to ErrValidation")

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "number", verr.Fields[0].Field, "field should be reported by its JSON name")
			assert.Equal(t, tt.wantReason, verr.Fields[0].Reason)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "number", Reason: "must not be blank"},
		{Field: "other", Reason: "is invalid"},
	}}

	assert.Equal(t, "validation failed: number: must not be blank; other: is invalid", err.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("number", "must not be blank")

	require.Len(t, err.Fields, 1)
	assert.Equal(t, "number: must not be blank", err.Fields[0].String())
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input   string
		want    Channel
		wantErr bool
	}{
		{input: "words", want: ChannelNumberToWords},
		{input: "number-to-words", want: ChannelNumberToWords},
		{input: " Dollars ", want: ChannelNumberToDollars},
		{input: "number-to-dollars", want: ChannelNumberToDollars},
		{input: "roman", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChannel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownChannel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestChannels(t *testing.T) {
	assert.Equal(t, []Channel{ChannelNumberToWords, ChannelNumberToDollars}, Channels())
	assert.False(t, Channel("number-to-roman").Valid())
}
