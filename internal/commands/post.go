package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/accounts"
	"github.com/facto-dev/facto/internal/config"
	"github.com/facto-dev/facto/internal/id"
	"github.com/facto-dev/facto/internal/lines"
	"github.com/facto-dev/facto/internal/posting"
	"github.com/facto-dev/facto/internal/totals"
)

func newPostCommand() *cobra.Command {
	var dataDir string
	var seq int

	cmd := &cobra.Command{
		Use:   "post <lines.csv>",
		Short: "Draft the double-entry posting for an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runPost(absDir, args[0], seq)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "facto data directory")
	cmd.Flags().IntVar(&seq, "seq", 1, "invoice sequential number")

	return cmd
}

func runPost(dataDir, linesPath string, seq int) error {
	cfg, err := config.Load(filepath.Join(dataDir, "facto.yaml"))
	if err != nil {
		return err
	}

	chart, err := accounts.Load(dataDir)
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

	number := id.FormatInvoiceNumber(cfg.Invoice.NumberSeries, seq)
	entry := posting.BuildEntry(number, t, cfg.Posting)
	if len(entry.Legs) == 0 {
		fmt.Println("Nothing to post: all lines excluded.")
		return nil
	}

	if verrs := posting.Validate(entry, chart); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	fmt.Printf("Entry %s\n", entry.Number)
	for _, leg := range entry.Legs {
		side := "debit "
		amount := leg.Debit
		if leg.Debit.IsZero() {
			side = "credit"
			amount = leg.Credit
		}
		fmt.Printf("  %s %-12s %12s  %s\n", side, leg.AccountCode, amount.StringFixed(2), leg.Description)
	}
	return nil
}
