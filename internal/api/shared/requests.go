package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes limits the size of JSON request bodies.
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned when the request has no body.
	ErrEmptyBody = errors.New("request body must not be empty")

	// ErrTrailingData is returned when the body holds more than one JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)

// DecodeJSON decodes the request body into v. Unknown fields, trailing data
// and bodies larger than MaxBodyBytes are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
