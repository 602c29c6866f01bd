package cli

import (
	"github.com/spf13/cobra"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Inventory catalogue commands",
	}

	cmd.AddCommand(newItemAddCmd())
	cmd.AddCommand(newItemListCmd())
	cmd.AddCommand(newItemGetCmd())
	cmd.AddCommand(newItemUpdateCmd())

	return cmd
}

func newItemAddCmd() *cobra.Command {
	var id, name, description string
	var price, stock int
	var rental bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"id":          id,
				"name":        name,
				"description": description,
				"sale_price":  price,
				"stock":       stock,
				"is_rental":   rental,
			}
			var result Item

			if err := client.Post("/api/v1/inventory", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Item ID (generated if omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().IntVar(&price, "price", 0, "Sale or rental price")
	cmd.Flags().IntVar(&stock, "stock", 0, "Units in stock")
	cmd.Flags().BoolVar(&rental, "rental", false, "Offer this item for rent")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Item

			if err := client.Get("/api/v1/inventory", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newItemGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <item-id>",
		Short: "Show an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Item

			if err := client.Get("/api/v1/inventory/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newItemUpdateCmd() *cobra.Command {
	var name, description string
	var price, stock int
	var rental bool

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Edit an item, changing only the flags given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if cmd.Flags().Changed("price") {
				req["sale_price"] = price
			}
			if cmd.Flags().Changed("stock") {
				req["stock"] = stock
			}
			if cmd.Flags().Changed("rental") {
				req["is_rental"] = rental
			}

			var result Item

			if err := client.Patch("/api/v1/inventory/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().IntVar(&price, "price", 0, "Sale or rental price")
	cmd.Flags().IntVar(&stock, "stock", 0, "Units in stock")
	cmd.Flags().BoolVar(&rental, "rental", false, "Offer this item for rent")

	return cmd
}
