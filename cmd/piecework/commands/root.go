package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"piecework/internal/platform/config"
	"piecework/internal/platform/logging"
)

type rootOptions struct {
	cfg       config.Config
	logLevel  string
	logFormat string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "piecework",
		Short:         "Piecework wage calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg = config.Load()
			if opts.logLevel != "" {
				opts.cfg.LogLevel = opts.logLevel
			}
			if opts.logFormat != "" {
				opts.cfg.LogFormat = opts.logFormat
			}
			slog.SetDefault(logging.New(os.Stderr, opts.cfg.LogFormat, opts.cfg.LogLevel))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: json or text (default from LOG_FORMAT)")

	root.AddCommand(serveCmd(opts), calcCmd())
	return root
}
