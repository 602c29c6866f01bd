package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerSetStatusCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newLeaderboardCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var callsign, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"callsign": callsign,
				"name":     name,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&callsign, "callsign", "", "Callsign (required)")
	cmd.Flags().StringVar(&name, "name", "", "Real name (required)")
	_ = cmd.MarkFlagRequired("callsign")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a player's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerSetStatusCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set-status <player-id>",
		Short: "Change a player's roster standing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"status": status}
			var result Player

			if err := client.Patch("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status: active, on_leave, retired (required)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player removed")
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the XP leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry

			if err := client.Get("/api/v1/players/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
