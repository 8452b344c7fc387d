package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/config"
	"github.com/facto-dev/facto/internal/lines"
	"github.com/facto-dev/facto/internal/totals"
)

func newTotalsCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "totals <lines.csv>",
		Short: "Compute invoice totals and tax breakdown from a lines file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runTotals(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "facto data directory")

	return cmd
}

func runTotals(dataDir, linesPath string) error {
	cfg, err := config.Load(filepath.Join(dataDir, "facto.yaml"))
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

	t, err := totals.Compute(invoiceLines)
	if err != nil {
		return err
	}

	fmt.Printf("Subtotal:    %12s\n", t.Subtotal.StringFixed(2))
	for _, b := range t.TaxByRate {
		fmt.Printf("Tax %5s%%:  %12s  (base %s)\n",
			b.RatePct, b.Tax.StringFixed(2), b.Base.StringFixed(2))
	}
	fmt.Printf("Total tax:   %12s\n", t.TotalTax.StringFixed(2))
	fmt.Printf("Grand total: %12s\n", t.GrandTotal.StringFixed(2))
	return nil
}
