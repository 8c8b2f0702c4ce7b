// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, environment
// variables). It provides type-safe access to the server and integration
// settings while keeping configuration details separate from the gateway
// logic.
package config
