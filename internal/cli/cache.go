package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Score cache management commands",
	}

	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Drop every cached root score",
		Example: `  connectfour --cache redis --redis-url redis://localhost:6379 cache clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cache == nil {
				return errors.New("no score cache configured: use --cache memory or --cache redis")
			}
			if err := app.Cache.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing score cache: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Score cache cleared.")
			return nil
		},
	}
}
