package main

import (
	"context"
	"fmt"
	"io"

	"github.com/phrazzld/numconv-api/internal/api"
	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/spf13/cobra"
)

func newConvertCmd(configFile *string) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a single number without starting the server",
		Long: `Convert a single number through the Number Conversion service in-process.
The same validation, translation and error categories as the HTTP API apply.`,
	}

	convertCmd.AddCommand(newConvertSubCmd(configFile, "words", "Convert an integer to words"))
	convertCmd.AddCommand(newConvertSubCmd(configFile, "dollars", "Convert a decimal amount to dollars and cents"))

	return convertCmd
}

func newConvertSubCmd(configFile *string, alias, short string) *cobra.Command {
	return &cobra.Command{
		Use:   alias + " <number>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAppConfig(*configFile)
			if err != nil {
				return err
			}

			app, err := newApplication(cfg, cliLogger(cfg, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			return app.convert(cmd.Context(), alias, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// convert runs one conversion over the channel named by channelName (full
// name or alias) and prints the result to out. Failures are printed to errOut
// in their normalized category and message form.
func (app *application) convert(
	ctx context.Context,
	channelName string,
	number string,
	out, errOut io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req := domain.ConversionRequest{Number: number}

	var result string
	channel, err := domain.ParseChannel(channelName)
	if err == nil {
		switch channel {
		case domain.ChannelNumberToWords:
			result, err = app.conversionService.ConvertNumberToWords(ctx, req)
		case domain.ChannelNumberToDollars:
			result, err = app.conversionService.ConvertNumberToDollars(ctx, req)
		}
	}

	if err != nil {
		_, body := api.NormalizeError(err, "")
		printErrorBody(errOut, body)
		return &reportedError{err: err}
	}

	_, err = fmt.Fprintln(out, result)
	return err
}

func printErrorBody(w io.Writer, body interface{}) {
	switch b := body.(type) {
	case []api.ErrorEnvelope:
		for _, env := range b {
			fmt.Fprintf(w, "%s: %s\n", env.Category, env.Message)
		}
	case api.ErrorEnvelope:
		fmt.Fprintf(w, "%s: %s\n", b.Category, b.Message)
	}
}
