package cli

import (
	"github.com/spf13/cobra"
)

func newLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Financial ledger commands",
	}

	cmd.AddCommand(newLedgerListCmd())
	cmd.AddCommand(newLedgerSummaryCmd())
	cmd.AddCommand(newLedgerExpenseCmd())
	cmd.AddCommand(newLedgerSaleCmd())

	return cmd
}

func newLedgerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ledger transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Transaction

			if err := client.Get("/api/v1/ledger", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLedgerSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show revenue and expense totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summary

			if err := client.Get("/api/v1/ledger/summary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLedgerExpenseCmd() *cobra.Command {
	var description string
	var amount int

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"description": description,
				"amount":      amount,
			}
			var result Transaction

			if err := client.Post("/api/v1/ledger/expenses", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print([]Transaction{result})
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "What the money went on (required)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount spent (required)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newLedgerSaleCmd() *cobra.Command {
	var itemID, payment string
	var quantity int

	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Record a retail sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"item_id":        itemID,
				"quantity":       quantity,
				"payment_status": payment,
			}
			var result Transaction

			if err := client.Post("/api/v1/ledger/sales", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print([]Transaction{result})
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "Item ID (required)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units sold")
	cmd.Flags().StringVar(&payment, "payment", "paid_cash", "Payment status: paid_card or paid_cash")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}
