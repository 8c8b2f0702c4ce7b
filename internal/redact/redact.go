// Package redact scrubs sensitive details from error text before it is logged
// or echoed back to API clients. Upstream transport errors routinely embed
// endpoint URLs, resolved addresses, credentials from URL userinfo, and local
// file paths; none of these belong in a response body.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedURLPlaceholder        = "[REDACTED_URL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedAddrPlaceholder       = "[REDACTED_ADDR]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// hostnamePattern matches bare dotted names. It also hits type names such as
// System.FormatException, so Message skips it.
var hostnamePattern = regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`)

// rules are applied in order. URLs and paths go first so that the hosts and
// file names inside them are consumed whole rather than piecemeal.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.\-]*://[^\s"'<>]+`), RedactedURLPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), RedactedAddrPlaceholder},
	{regexp.MustCompile(`\[[0-9a-fA-F:]+\](?::\d{1,5})?`), RedactedAddrPlaceholder},
	{hostnamePattern, RedactedHostPlaceholder},
	{regexp.MustCompile(`\blocalhost(?::\d{1,5})?\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	return apply(input, true)
}

// Message redacts like String but leaves bare dotted names alone. Use it for
// text written by a remote service, such as a SOAP fault string, where
// "System.FormatException" is a type name rather than a host. Hosts inside
// URLs are still redacted.
func Message(input string) string {
	if input == "" {
		return input
	}
	return apply(input, false)
}

func apply(input string, dottedNames bool) string {
	result := input
	for _, r := range rules {
		if r.pattern == hostnamePattern && !dottedNames {
			continue
		}
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
