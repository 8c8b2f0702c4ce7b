// Package testutils provides helpers shared by tests across packages, chiefly
// an in-process stand-in for the Number Conversion SOAP service.
package testutils
