package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Event lifecycle commands",
	}

	cmd.AddCommand(newEventCreateCmd())
	cmd.AddCommand(newEventListCmd())
	cmd.AddCommand(newEventGetCmd())
	cmd.AddCommand(newEventSignupCmd())
	cmd.AddCommand(newEventWithdrawCmd())
	cmd.AddCommand(newEventAdmitCmd())
	cmd.AddCommand(newEventAbsentCmd())
	cmd.AddCommand(newEventStartCmd())
	cmd.AddCommand(newEventStatCmd())
	cmd.AddCommand(newEventClockCmd())
	cmd.AddCommand(newEventFinishCmd())
	cmd.AddCommand(newEventCancelCmd())
	cmd.AddCommand(newEventDeleteCmd())
	cmd.AddCommand(newEventAvailabilityCmd())

	return cmd
}

func newEventCreateCmd() *cobra.Command {
	var title, date, location, description string
	var fee, participationXp int
	var gear []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := time.Parse(time.RFC3339, date)
			if err != nil {
				return fmt.Errorf("invalid --date, want RFC3339: %w", err)
			}

			req := map[string]any{
				"title":            title,
				"date":             when,
				"location":         location,
				"description":      description,
				"game_fee":         fee,
				"participation_xp": participationXp,
				"gear_for_rent":    gear,
			}
			var result Event

			if err := client.Post("/api/v1/events", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&date, "date", "", "Event date, RFC3339 (required)")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().IntVar(&fee, "fee", 0, "Game fee")
	cmd.Flags().IntVar(&participationXp, "participation-xp", 0, "Base XP for this event (0 uses the configured rule)")
	cmd.Flags().StringSliceVar(&gear, "gear", nil, "Item IDs offered for rent")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newEventListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Event

			if err := client.Get("/api/v1/events", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <event-id>",
		Short: "Show an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Event

			if err := client.Get("/api/v1/events/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventSignupCmd() *cobra.Command {
	var playerID, note string
	var gear []string

	cmd := &cobra.Command{
		Use:   "signup <event-id>",
		Short: "Sign a player up for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_id":          playerID,
				"requested_gear_ids": gear,
				"note":               note,
			}
			var result Event

			if err := client.Post("/api/v1/events/"+args[0]+"/signups", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringSliceVar(&gear, "gear", nil, "Requested rental item IDs")
	cmd.Flags().StringVar(&note, "note", "", "Signup note")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newEventWithdrawCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "withdraw <event-id>",
		Short: "Withdraw a player's signup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/events/" + args[0] + "/signups/" + playerID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Signup withdrawn")
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newEventAdmitCmd() *cobra.Command {
	var playerID, payment, voucherCode, discountReason, note string
	var discount int
	var gear []string

	cmd := &cobra.Command{
		Use:   "admit <event-id>",
		Short: "Admit a player at the desk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_id":       playerID,
				"payment_status":  payment,
				"voucher_code":    voucherCode,
				"rented_gear_ids": gear,
				"manual_discount": discount,
				"discount_reason": discountReason,
				"note":            note,
			}
			var result Attendee

			if err := client.Post("/api/v1/events/"+args[0]+"/admissions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&payment, "payment", "paid_cash", "Payment status: paid_card, paid_cash, unpaid")
	cmd.Flags().StringVar(&voucherCode, "voucher", "", "Voucher code to redeem")
	cmd.Flags().StringSliceVar(&gear, "gear", nil, "Rented item IDs")
	cmd.Flags().IntVar(&discount, "discount", 0, "Manual discount amount")
	cmd.Flags().StringVar(&discountReason, "discount-reason", "", "Reason for the manual discount")
	cmd.Flags().StringVar(&note, "note", "", "Admission note")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newEventAbsentCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "absent <event-id>",
		Short: "Mark a signed-up player as a no-show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_id": playerID}
			var result Event

			if err := client.Post("/api/v1/events/"+args[0]+"/absences", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newEventStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <event-id>",
		Short: "Start an event and split teams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Event

			if err := client.Post("/api/v1/events/"+args[0]+"/start", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventStatCmd() *cobra.Command {
	var playerID, field string
	var delta int

	cmd := &cobra.Command{
		Use:   "stat <event-id>",
		Short: "Adjust a live stat counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_id": playerID,
				"field":     field,
				"delta":     delta,
			}

			if err := client.Post("/api/v1/events/"+args[0]+"/stats", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("%s %+d for %s", field, delta, playerID))
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&field, "field", "", "Stat field: kills, deaths, headshots (required)")
	cmd.Flags().IntVar(&delta, "delta", 1, "Adjustment amount")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newEventClockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Game clock commands",
	}

	for _, action := range []string{"start", "pause", "reset"} {
		action := action
		cmd.AddCommand(&cobra.Command{
			Use:   action + " <event-id>",
			Short: capitalize(action) + " the game clock",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var result Event

				if err := client.Post("/api/v1/events/"+args[0]+"/clock/"+action, nil, &result); err != nil {
					return err
				}

				out := NewOutput(cfg.Output)
				out.Print(result)
				return nil
			},
		})
	}

	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func newEventFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish <event-id>",
		Short: "Finish an event, settling XP and revenue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SettlementResult

			if err := client.Post("/api/v1/events/"+args[0]+"/finish", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event that never ran",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/events/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Event deleted")
			return nil
		},
	}
}

func newEventAvailabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "availability <event-id>",
		Short: "Show rental gear availability for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Availability

			if err := client.Get("/api/v1/events/"+args[0]+"/availability", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <event-id>",
		Short: "Cancel an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Event

			if err := client.Post("/api/v1/events/"+args[0]+"/cancel", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
