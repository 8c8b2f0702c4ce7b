// Package service contains the conversion use cases. Each operation runs the
// same pipeline: validate the inbound request, translate the number into the
// external service's value type, and dispatch it over the matching channel.
//
// The service depends on the Dispatcher through the NumberDispatcher
// interface and never on the SOAP client directly. Errors from each stage are
// returned as-is so the HTTP boundary can classify them with errors.As.
package service
