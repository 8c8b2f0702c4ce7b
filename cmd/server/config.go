package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/numconv-api/internal/config"
)

// loadAppConfig loads the application configuration from defaults, the
// optional config file, and the environment.
func loadAppConfig(configFile string) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfigSummary records the settings that matter when diagnosing a
// deployment. The endpoint host is logged, never credentials.
func logConfigSummary(log *slog.Logger, cfg *config.Config) {
	log.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"base_path", cfg.Server.BasePath)

	log.Debug("Integration configuration",
		"endpoint_url", cfg.Integration.EndpointURL,
		"wsdl_url", cfg.Integration.WSDLURL,
		"port_name", cfg.Integration.PortName,
		"timeout_seconds", cfg.Integration.TimeoutSeconds)
}
