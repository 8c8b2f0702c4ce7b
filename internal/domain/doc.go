// Package domain holds the pieces of the gateway that have no transport
// concerns: the ConversionRequest and its validation rules, the two logical
// conversion channels, and the translation of a numeric string into the
// integer or decimal value the external service expects.
//
// Everything here is pure. Nothing performs I/O or keeps state between calls.
package domain
