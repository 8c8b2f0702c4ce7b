package main

import (
	"testing"

	"github.com/phrazzld/numconv-api/internal/config"
	"github.com/phrazzld/numconv-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   8080,
			LogLevel:               "debug",
			BasePath:               "/api/number-conversion",
			ShutdownTimeoutSeconds: 5,
		},
		Integration: config.IntegrationConfig{
			EndpointURL:    endpoint,
			WSDLURL:        endpoint + "?WSDL",
			Namespace:      config.DefaultNamespace,
			PortName:       config.DefaultPortName,
			TimeoutSeconds: 5,
		},
	}
}

func newTestApp(t *testing.T, endpoint string) *application {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	app, err := newApplication(testConfig(endpoint), log)
	require.NoError(t, err)
	return app
}
