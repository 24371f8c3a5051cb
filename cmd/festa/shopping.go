package main

import (
	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
)

func newShoppingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Manage the shopping list",
	}

	var category, unit string
	var quantity int
	var price float64
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.AddShoppingItem(cmd.Context(), festa.NewShoppingItem{
				Name:           args[0],
				Category:       festa.ShoppingCategory(category),
				Quantity:       quantity,
				Unit:           unit,
				EstimatedPrice: price,
			})
			return runShoppingList(a, cmd)
		},
	}
	add.Flags().StringVar(&category, "category", string(festa.ShoppingComidas), "bebidas|comidas|doces|descartaveis|decoracao")
	add.Flags().IntVar(&quantity, "qty", 1, "quantity")
	add.Flags().StringVar(&unit, "unit", "un", "unit of measure")
	add.Flags().Float64Var(&price, "price", 0, "estimated price")

	list := &cobra.Command{
		Use:   "list",
		Short: "List items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShoppingList(a, cmd)
		},
	}

	var paid float64
	buy := &cobra.Command{
		Use:   "buy <id>",
		Short: "Mark an item as purchased",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes := true
			p := festa.ShoppingItemPatch{Purchased: &yes}
			if cmd.Flags().Changed("paid") {
				p.ActualPrice = &paid
			}
			a.store.UpdateShoppingItem(cmd.Context(), args[0], p)
			return runShoppingList(a, cmd)
		},
	}
	buy.Flags().Float64Var(&paid, "paid", 0, "actual price paid")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.RemoveShoppingItem(cmd.Context(), args[0])
			return runShoppingList(a, cmd)
		},
	}

	cmd.AddCommand(add, list, buy, remove)
	return cmd
}

func runShoppingList(a *app, cmd *cobra.Command) error {
	items := a.store.ShoppingItems()
	if len(items) == 0 {
		printf(cmd, "Lista de compras vazia.\n")
		return nil
	}
	for _, it := range items {
		status := " "
		if it.Purchased {
			status = "x"
		}
		printf(cmd, "[%s] %s  %dx %s (%s)  R$ %.2f", status, it.ID, it.Quantity, it.Name, it.Category, it.EstimatedPrice)
		if it.ActualPrice != nil {
			printf(cmd, "  pago R$ %.2f", *it.ActualPrice)
		}
		printf(cmd, "\n")
	}
	return nil
}
