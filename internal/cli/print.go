package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"owing/internal/config"
	"owing/internal/core"
	"owing/internal/invoicefile"
	"owing/internal/locale"
	applog "owing/internal/log"
	"owing/internal/services"
)

func newPrintCmd() *cobra.Command {
	var (
		invoicePath string
		today       string
		localeTag   string
		timezone    string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the owing summary of an invoice",
		Long:  "Reads an invoice as YAML or JSON from --invoice (or stdin) and prints the banner, customer, outstanding amount and due date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			LoadEnvFile()

			cfg := config.Load()
			if cmd.Flags().Changed("today") {
				cfg.Today = today
			}
			if cmd.Flags().Changed("locale") {
				cfg.Locale = localeTag
			}
			if cmd.Flags().Changed("timezone") {
				cfg.Timezone = timezone
			}
			if err := cfg.Validate(); err != nil {
				// The configured level is unusable here, so report at the default.
				SetupLogger(cmd.ErrOrStderr(), "").
					WithComponent(applog.ComponentConfig).
					Error("Configuration validation failed", applog.NewFields().
						WithOperation(applog.OpValidate).
						WithError(err).
						ToSlice()...)
				return err
			}

			logger := SetupLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			inv, err := readInvoice(cmd, invoicePath)
			if err != nil {
				logger.WithComponent(applog.ComponentInvoice).
					Error("Failed to read invoice", applog.NewFields().
						WithOperation(applog.OpParse).
						WithSource(sourceName(invoicePath)).
						WithError(err).
						ToSlice()...)
				return err
			}

			tag, _ := locale.Parse(cfg.Locale)
			reporter := services.NewReporter(cmd.OutOrStdout(), NewClock(cfg),
				services.WithLocale(tag),
				services.WithLocation(cfg.Location()),
				services.WithLogger(logger),
			)
			return reporter.PrintOwing(inv)
		},
	}

	cmd.Flags().StringVarP(&invoicePath, "invoice", "i", "-", "invoice file (YAML or JSON), - for stdin")
	cmd.Flags().StringVar(&today, "today", "", "report date as YYYY-MM-DD (default: the current date)")
	cmd.Flags().StringVar(&localeTag, "locale", "", "locale for the due date, e.g. en-US, de, ja (default from OWING_LOCALE)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "time zone that decides the current date (default from OWING_TIMEZONE)")
	return cmd
}

func isStdin(path string) bool {
	return path == "" || path == "-"
}

func sourceName(path string) string {
	if isStdin(path) {
		return "stdin"
	}
	return path
}

func readInvoice(cmd *cobra.Command, path string) (*core.Invoice, error) {
	if isStdin(path) {
		inv, err := invoicefile.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading invoice from stdin: %w", err)
		}
		return inv, nil
	}
	return invoicefile.Load(path)
}
