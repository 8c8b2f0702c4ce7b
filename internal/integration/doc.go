// Package integration routes conversion requests to the external Number
// Conversion service.
//
// The Dispatcher holds a fixed table from domain.Channel to a handler that
// performs one synchronous SOAP round trip. Whatever goes wrong inside a
// handler comes back as an *IntegrationError labelled with the Step that
// failed; raw transport errors never escape unwrapped.
package integration
