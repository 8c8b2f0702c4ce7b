package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server. It exposes POST {base_path}/convertNumberToWords,
POST {base_path}/convertNumberToDollars and GET /health, and shuts down
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAppConfig(*configFile)
			if err != nil {
				return err
			}

			log, err := setupAppLogger(cfg)
			if err != nil {
				return err
			}
			logConfigSummary(log, cfg)

			app, err := newApplication(cfg, log)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}
