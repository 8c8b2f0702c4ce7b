package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/numconv-api/internal/config"
	"github.com/phrazzld/numconv-api/internal/integration"
	"github.com/phrazzld/numconv-api/internal/platform/soap"
	"github.com/phrazzld/numconv-api/internal/service"
)

// application holds the shared dependencies. Everything in it is built once
// at startup and is safe for concurrent use by request goroutines.
type application struct {
	config *config.Config
	logger *slog.Logger

	soapClient        *soap.Client
	dispatcher        *integration.Dispatcher
	conversionService service.ConversionService
}

// newApplication wires the SOAP client, dispatcher and conversion service.
// soapOpts are passed to the SOAP client, e.g. to substitute its HTTP client.
func newApplication(cfg *config.Config, logger *slog.Logger, soapOpts ...soap.Option) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.soapClient, err = soap.NewClient(cfg.Integration, logger, soapOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOAP client: %w", err)
	}

	app.dispatcher, err = integration.NewDispatcher(app.soapClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create integration dispatcher: %w", err)
	}

	app.conversionService, err = service.NewConversionService(app.dispatcher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"endpoint_url", app.soapClient.Endpoint())
	return app, nil
}

// Run serves HTTP until ctx is cancelled or the process is signalled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
