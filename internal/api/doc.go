// Package api exposes the conversion operations over HTTP. It decodes JSON
// requests, hands them to the conversion service, and turns every failure
// into an HTTP status and error body through NormalizeError.
package api
