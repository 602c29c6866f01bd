package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newVoucherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voucher",
		Short: "Voucher commands",
	}

	cmd.AddCommand(newVoucherCreateCmd())
	cmd.AddCommand(newVoucherListCmd())
	cmd.AddCommand(newVoucherValidateCmd())
	cmd.AddCommand(newVoucherSetStatusCmd())

	return cmd
}

func newVoucherCreateCmd() *cobra.Command {
	var code, discountType, playerID string
	var value, maxUses, maxUsesPerPlayer int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a new voucher",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"code":                  code,
				"discount_type":         discountType,
				"discount_value":        value,
				"assigned_to_player_id": playerID,
				"usage_limit":           maxUses,
				"per_user_limit":        maxUsesPerPlayer,
			}
			var result Voucher

			if err := client.Post("/api/v1/vouchers", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Voucher code (required)")
	cmd.Flags().StringVar(&discountType, "type", "fixed", "Discount type: fixed or percentage")
	cmd.Flags().IntVar(&value, "value", 0, "Discount value (required)")
	cmd.Flags().StringVar(&playerID, "player", "", "Restrict redemption to a single player")
	cmd.Flags().IntVar(&maxUses, "max-uses", 0, "Total redemption limit (0 = unlimited)")
	cmd.Flags().IntVar(&maxUsesPerPlayer, "max-uses-per-player", 0, "Per-player redemption limit (0 = unlimited)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newVoucherListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vouchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Voucher

			if err := client.Get("/api/v1/vouchers", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newVoucherValidateCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "validate <code>",
		Short: "Check whether a voucher could be redeemed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("code", args[0])
			q.Set("player_id", playerID)

			var result Voucher

			if err := client.Get("/api/v1/vouchers/validate?"+q.Encode(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID attempting redemption (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newVoucherSetStatusCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set-status <voucher-id>",
		Short: "Change a voucher's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"status": status}
			var result Voucher

			if err := client.Patch("/api/v1/vouchers/"+args[0]+"/status", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status: active, expired, depleted (required)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
