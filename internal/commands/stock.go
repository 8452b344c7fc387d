package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/catalog"
	"github.com/facto-dev/facto/internal/config"
	"github.com/facto-dev/facto/internal/lines"
)

func newStockCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "stock <lines.csv>",
		Short: "Check invoice lines against product stock levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runStock(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "facto data directory")

	return cmd
}

func runStock(dataDir, linesPath string) error {
	cfg, err := config.Load(filepath.Join(dataDir, "facto.yaml"))
	if err != nil {
		return err
	}

	products, err := catalog.Load(dataDir, cfg.Stock)
	if err != nil {
		return err
	}

	f, err := os.Open(linesPath)
	if err != nil {
		return fmt.Errorf("opening lines file: %w", err)
	}
	defer f.Close()

	invoiceLines, err := lines.ReadLines(f, decimal.NewFromFloat(cfg.Invoice.DefaultTaxRate))
	if err != nil {
		return fmt.Errorf("reading lines file: %w", err)
	}

	blocking := 0
	for _, line := range invoiceLines {
		if line.Deleted || line.ProductID == "" {
			continue
		}
		check, ok := products.CheckStock(line.ProductID, line.Quantity)
		if !ok || check.Level == catalog.StockOK {
			continue
		}
		fmt.Printf("[%s] %s\n", check.Level, check.Message)
		if check.Blocking() {
			blocking++
		}
	}

	if blocking > 0 {
		return fmt.Errorf("%d line(s) with insufficient stock", blocking)
	}
	fmt.Println("Stock OK.")
	return nil
}
