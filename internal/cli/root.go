package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"cfb-matchups-service/internal/config"
	"cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/logging"
	"cfb-matchups-service/internal/server"
)

const serviceName = "matchupctl"

// options carries the resolved configuration shared by every subcommand.
type options struct {
	provider  string
	url       string
	timeout   time.Duration
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command for the matchupctl CLI.
func NewRootCmd(ver string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "matchupctl",
		Short:         "Fetch and render the CFB predicted matchups sheet",
		Long:          "matchupctl fetches the published matchup sheet once, using the same environment as the server, and prints or renders it.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Print the current sheet as a table
  matchupctl fetch

  # Dump rows as JSON from a different sheet
  matchupctl fetch --json --url https://example.com/sheet.csv

  # Render the page to a file
  matchupctl render --out matchups.html`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd, ver)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.provider, "provider", "", "provider to fetch from (sheets or fixture; default from PROVIDER)")
	cmd.PersistentFlags().StringVar(&opts.url, "url", "", "published CSV URL (default from SHEET_CSV_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "fetch timeout (default from SHEET_TIMEOUT)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format (text or json)")
	cmd.AddCommand(newFetchCmd(opts), newRenderCmd(opts))

	return cmd
}

func (o *options) resolve(cmd *cobra.Command, ver string) error {
	if o.timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", o.timeout)
	}

	o.cfg = config.Load()
	if o.provider != "" {
		o.cfg.Provider = o.provider
	}
	if o.url != "" {
		o.cfg.Sheet.URL = o.url
	}
	if o.timeout > 0 {
		o.cfg.Sheet.Timeout = o.timeout
	}

	o.logger = logging.NewLogger(logging.Config{
		Level:   o.logLevel,
		Format:  o.logFormat,
		Service: serviceName,
		Version: ver,
		Output:  cmd.ErrOrStderr(),
	})
	return nil
}

// fetch performs one provider call; unlike the server it surfaces the error.
func (o *options) fetch(ctx context.Context) (matchups.Dataset, time.Duration, error) {
	provider := server.NewProvider(o.cfg, o.logger, nil)
	start := time.Now()
	ds, err := provider.FetchMatchups(ctx)
	if err != nil {
		return nil, time.Since(start), fmt.Errorf("fetch matchups: %w", err)
	}
	return ds, time.Since(start), nil
}
