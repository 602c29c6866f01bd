package cli

import (
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "XP rule commands",
	}

	cmd.AddCommand(newRulesListCmd())
	cmd.AddCommand(newRulesSetCmd())
	cmd.AddCommand(newRanksCmd())

	return cmd
}

func newRulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List XP rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Rule

			if err := client.Get("/api/v1/rules", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRulesSetCmd() *cobra.Command {
	var xp int

	cmd := &cobra.Command{
		Use:   "set <rule-id>",
		Short: "Set the XP value for a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"xp": xp}
			var result Rule

			if err := client.Patch("/api/v1/rules/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print([]Rule{result})
			return nil
		},
	}

	cmd.Flags().IntVar(&xp, "xp", 0, "XP awarded per occurrence (required)")
	_ = cmd.MarkFlagRequired("xp")

	return cmd
}

func newRanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "Show the rank ladder",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Rank

			if err := client.Get("/api/v1/ranks", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
