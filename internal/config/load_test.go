package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable unset, which viper treats as absent.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load fills every setting from defaults when
// neither a config file nor environment variables are present.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"NUMCONV_SERVER_PORT":              "",
		"NUMCONV_SERVER_LOG_LEVEL":         "",
		"NUMCONV_INTEGRATION_ENDPOINT_URL": "",
	})

	cfg, err := Load("")

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "/api/number-conversion", cfg.Server.BasePath)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, DefaultEndpointURL, cfg.Integration.EndpointURL)
	assert.Equal(t, DefaultEndpointURL+"?WSDL", cfg.Integration.WSDLURL,
		"WSDL URL should be derived from the endpoint when unset")
	assert.Equal(t, DefaultNamespace, cfg.Integration.Namespace)
	assert.Equal(t, DefaultPortName, cfg.Integration.PortName)
	assert.Equal(t, 10, cfg.Integration.TimeoutSeconds)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"NUMCONV_SERVER_HOST":                 "127.0.0.1",
		"NUMCONV_SERVER_PORT":                 "9090",
		"NUMCONV_SERVER_LOG_LEVEL":            "debug",
		"NUMCONV_SERVER_BASE_PATH":            "/convert",
		"NUMCONV_INTEGRATION_ENDPOINT_URL":    "http://localhost:8088/numberconversion.wso",
		"NUMCONV_INTEGRATION_TIMEOUT_SECONDS": "3",
	})

	cfg, err := Load("")

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "/convert", cfg.Server.BasePath)
	assert.Equal(t, "http://localhost:8088/numberconversion.wso", cfg.Integration.EndpointURL)
	assert.Equal(t, "http://localhost:8088/numberconversion.wso?WSDL", cfg.Integration.WSDLURL)
	assert.Equal(t, 3, cfg.Integration.TimeoutSeconds)
}

// TestLoadFromFile verifies that an explicit config file is read and that
// environment variables still override it.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	content := []byte(`server:
  port: 7070
  log_level: warn
integration:
  endpoint_url: http://soap.internal/numberconversion.wso
  wsdl_url: http://soap.internal/wsdl
  timeout_seconds: 20
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setupEnv(t, map[string]string{
		"NUMCONV_SERVER_LOG_LEVEL": "error",
	})

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should take precedence over the file")
	assert.Equal(t, "http://soap.internal/numberconversion.wso", cfg.Integration.EndpointURL)
	assert.Equal(t, "http://soap.internal/wsdl", cfg.Integration.WSDLURL)
	assert.Equal(t, 20, cfg.Integration.TimeoutSeconds)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"NUMCONV_SERVER_PORT": "999999",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"NUMCONV_SERVER_LOG_LEVEL": "invalid-level",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid endpoint URL",
			envVars: map[string]string{
				"NUMCONV_INTEGRATION_ENDPOINT_URL": "not a url",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Base path without leading slash",
			envVars: map[string]string{
				"NUMCONV_SERVER_BASE_PATH": "api",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Timeout out of range",
			envVars: map[string]string{
				"NUMCONV_INTEGRATION_TIMEOUT_SECONDS": "0",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load("")

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
