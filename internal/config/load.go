package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. NUMCONV_SERVER_PORT or NUMCONV_INTEGRATION_ENDPOINT_URL.
const EnvPrefix = "NUMCONV"

// Default values for the external Number Conversion service.
const (
	DefaultEndpointURL = "https://www.dataaccess.com/webservicesserver/numberconversion.wso"
	DefaultNamespace   = "http://www.dataaccess.com/webservicesserver/"
	DefaultPortName    = "NumberConversionSoap"
)

// Load configuration from defaults, an optional config file, and environment
// variables. Environment variables take precedence over values from the file.
//
// configFile may be empty, in which case numconv.{yaml,json,toml} is looked up
// in the working directory and ./config. A missing file is not an error; an
// explicitly named file that cannot be read is.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("numconv")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Integration.WSDLURL == "" {
		cfg.Integration.WSDLURL = cfg.Integration.EndpointURL + "?WSDL"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key with viper. Registering the key is what
// lets AutomaticEnv pick up the matching environment variable on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_path", "/api/number-conversion")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("integration.endpoint_url", DefaultEndpointURL)
	v.SetDefault("integration.wsdl_url", "")
	v.SetDefault("integration.namespace", DefaultNamespace)
	v.SetDefault("integration.port_name", DefaultPortName)
	v.SetDefault("integration.timeout_seconds", 10)
}
