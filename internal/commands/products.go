package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/catalog"
	"github.com/facto-dev/facto/internal/config"
)

func newProductsCommand() *cobra.Command {
	var dataDir string
	var limit int

	cmd := &cobra.Command{
		Use:   "products <query>",
		Short: "Search the product catalog by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runProducts(absDir, args[0], limit)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "facto data directory")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}

func runProducts(dataDir, query string, limit int) error {
	cfg, err := config.Load(filepath.Join(dataDir, "facto.yaml"))
	if err != nil {
		return err
	}

	products, err := catalog.Load(dataDir, cfg.Stock)
	if err != nil {
		return err
	}

	results := products.Search(query, limit)
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, p := range results {
		fmt.Printf("%-10s %-40s %10s  stock %s\n",
			p.ID, p.Name, p.UnitPrice.StringFixed(2), p.CurrentStock)
	}
	return nil
}
