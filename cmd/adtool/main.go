// Command adtool maintains the ad data files and inspects ad sources: it
// merges scraper output, imports Meta exports, backfills source tags,
// validates and views data files, pages through a remote backend and loads
// records into PostgreSQL.
package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adboard/internal/config/configs"
	applog "adboard/internal/logger"
)

type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: applog.Discard()}
	root := &cobra.Command{
		Use:          "adtool",
		Short:        "Maintain and inspect ad record data",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = applog.New(configs.Logger{Level: a.logLevel, Format: a.logFormat}, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "tint", "log format (text, json, tint)")

	root.AddCommand(
		a.mergeCmd(),
		a.importMetaCmd(),
		a.backfillCmd(),
		a.validateCmd(),
		a.viewCmd(),
		a.fetchCmd(),
		a.loadDBCmd(),
	)
	return root
}

// printJSON writes a command summary.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
