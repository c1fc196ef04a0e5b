package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewAccountCacheCmd builds the root command of the accountcache demo.
func NewAccountCacheCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "accountcache",
		Short: "Drive a concurrent workload against the account cache and report the result",
		Long: `accountcache puts, overwrites and reads random accounts from several
goroutines, then prints the top 3 accounts by balance, the hit count
and the cache statistics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Capacity, "capacity", "c", cfg.Capacity, "Maximum number of cached accounts")
	flags.IntVarP(&cfg.Accounts, "accounts", "a", cfg.Accounts, "Number of distinct account ids in the workload")
	flags.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Number of concurrent goroutines")
	flags.IntVarP(&cfg.Ops, "ops", "n", cfg.Ops, "Operations per worker")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	flags.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Top-3 strategy: incremental or scan")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address (empty disables)")
	flags.DurationVar(&cfg.Linger, "linger", cfg.Linger, "Keep the metrics server up this long after the workload")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")

	return cmd
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	return nil
}
