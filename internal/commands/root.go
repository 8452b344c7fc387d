package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/buildinfo"
	"github.com/facto-dev/facto/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:     "facto",
		Short:   "Invoice entry engine: account cascade, totals, stock checks",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTotalsCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newStockCommand())
	rootCmd.AddCommand(newProductsCommand())
	rootCmd.AddCommand(newPostCommand())

	return rootCmd
}
