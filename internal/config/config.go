package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"      validate:"required"`
	Integration IntegrationConfig `mapstructure:"integration" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	// Host is the interface to bind to. Empty binds all interfaces.
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// BasePath is the prefix under which the conversion endpoints are mounted.
	BasePath string `mapstructure:"base_path" validate:"required,startswith=/"`

	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=120"`
}

// IntegrationConfig describes the external Number Conversion SOAP service.
// It is built once at startup and shared read-only by the SOAP client and the
// dispatcher.
type IntegrationConfig struct {
	EndpointURL string `mapstructure:"endpoint_url" validate:"required,url"`
	WSDLURL     string `mapstructure:"wsdl_url"     validate:"omitempty,url"`
	Namespace   string `mapstructure:"namespace"    validate:"required"`
	PortName    string `mapstructure:"port_name"    validate:"required"`

	// TimeoutSeconds bounds each outbound round trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1,lte=300"`
}
