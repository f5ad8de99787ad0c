package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Play Connect Four against a minimax opponent",
		Long: `connectfour plays Connect Four on a 6x7 board against a computer opponent.

The computer searches the game tree with minimax to a fixed depth and breaks
ties between equally good moves at random. Use --seed for reproducible games.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			fc, err := cfg.FactoryConfig(logger)
			if err != nil {
				return err
			}

			app, err = factory.New(fc)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&cfg.Depth, "depth", "d", cfg.Depth, "Search depth in plies (env: CONNECTFOUR_DEPTH)")
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for tie-breaking between equal moves (env: CONNECTFOUR_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.Cache, "cache", cfg.Cache, "Root score cache, shared across runs with redis: none, memory, redis (env: CONNECTFOUR_CACHE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --cache=redis (env: CONNECTFOUR_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: CONNECTFOUR_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format for analyze: text, json (env: CONNECTFOUR_OUTPUT)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newCacheCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
