package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/accounts"
	"github.com/facto-dev/facto/internal/catalog"
	"github.com/facto-dev/facto/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new facto data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	for _, d := range []string{"accounts", "products", "invoices"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write facto.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "facto.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	chart := accounts.NewService(accounts.DefaultChart())
	if err := chart.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Write empty product catalog.
	f, err := os.Create(filepath.Join(dir, "products", "catalog.csv"))
	if err != nil {
		return fmt.Errorf("creating product catalog: %w", err)
	}
	defer f.Close()
	if err := catalog.WriteProducts(f, nil); err != nil {
		return fmt.Errorf("writing product catalog: %w", err)
	}

	fmt.Printf("Initialized facto data directory at %s\n", dir)
	return nil
}
