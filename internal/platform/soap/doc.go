// Package soap is a minimal SOAP 1.1 client for the dataaccess.com Number
// Conversion web service.
//
// It is an infrastructure adapter: it knows the envelope layout, the two
// document/literal operations (NumberToWords, NumberToDollars), and how the
// service reports faults, and nothing about HTTP routing or request
// validation on the gateway side.
//
// Every failure is returned as a *CallError whose Stage tells the caller
// whether the request could not be encoded, the round trip failed (network
// error, non-2xx status, or SOAP fault), or the response could not be decoded.
// The client never retries.
package soap
