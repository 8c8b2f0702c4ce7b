// Package main implements the numconv command, a REST gateway in front of the
// dataaccess.com Number Conversion SOAP service. "numconv serve" runs the
// HTTP API; "numconv convert" performs a single conversion in-process.
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
