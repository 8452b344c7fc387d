package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facto-dev/facto/internal/accounts"
	"github.com/facto-dev/facto/internal/cascade"
	"github.com/facto-dev/facto/internal/config"
)

func newAccountsCommand() *cobra.Command {
	var dataDir string
	var companyID string
	var methodID string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the account options for a company and payment method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAccounts(absDir, companyID, methodID)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "facto data directory")
	cmd.Flags().StringVar(&companyID, "company", "", "company id (resolves the default payment method)")
	cmd.Flags().StringVar(&methodID, "method", "", "payment method id (overrides the company default)")

	return cmd
}

func runAccounts(dataDir, companyID, methodID string) error {
	cfg, err := config.Load(filepath.Join(dataDir, "facto.yaml"))
	if err != nil {
		return err
	}

	chart, err := accounts.Load(dataDir)
	if err != nil {
		return err
	}

	svc := cascade.NewService(cfg, chart)

	if methodID == "" {
		method, ok := svc.SuggestMethod(companyID, "", false)
		if !ok {
			return fmt.Errorf("no payment methods configured")
		}
		methodID = method.ID
		fmt.Printf("Payment method: %s (%s)\n", method.Name, method.ID)
	}

	opts := svc.OptionsForMethod(methodID)
	if opts.Filtered && len(opts.Accounts) == 0 {
		fmt.Println("No accounts under the configured parent.")
		return nil
	}

	for _, a := range opts.Accounts {
		marker := "  "
		if opts.Filtered && a.Code == opts.Suggested.Code {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, a)
	}
	return nil
}
