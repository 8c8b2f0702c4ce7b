package main

import (
	"errors"

	"github.com/phrazzld/numconv-api/internal/redact"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. configFile is shared by all
// subcommands through the persistent --config flag.
func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "numconv",
		Short: "Number conversion gateway",
		Long: `numconv exposes the dataaccess.com Number Conversion SOAP service as a JSON
API. Numbers can be converted to words or to a dollar amount.

Configuration is read from defaults, an optional numconv.yaml (or the file
given with --config), and NUMCONV_* environment variables, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to a config file (default: numconv.yaml in . or ./config)")

	rootCmd.AddCommand(newServeCmd(&configFile))
	rootCmd.AddCommand(newConvertCmd(&configFile))

	return rootCmd
}

// execute runs cmd and prints any error that a subcommand has not already
// reported. Printed errors are redacted.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		cmd.PrintErrln("Error:", redact.Error(err))
	}
	return err
}

// reportedError marks an error whose user-facing form has already been
// written to the command's error stream.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
