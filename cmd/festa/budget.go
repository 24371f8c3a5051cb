package main

import (
	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
)

func newBudgetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track planned versus spent money per category",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the budget table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBudgetList(a, cmd)
		},
	}

	var planned, spent float64
	set := &cobra.Command{
		Use:   "set <category>",
		Short: "Set planned or spent amounts for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p festa.BudgetPatch
			if cmd.Flags().Changed("planned") {
				p.Planned = &planned
			}
			if cmd.Flags().Changed("spent") {
				p.Spent = &spent
			}
			a.store.UpdateBudgetCategory(cmd.Context(), args[0], p)
			return runBudgetList(a, cmd)
		},
	}
	set.Flags().Float64Var(&planned, "planned", 0, "planned amount")
	set.Flags().Float64Var(&spent, "spent", 0, "spent amount")

	cmd.AddCommand(list, set)
	return cmd
}

func runBudgetList(a *app, cmd *cobra.Command) error {
	var totalPlanned, totalSpent float64
	for _, c := range a.store.BudgetCategories() {
		printf(cmd, "%-14s planejado R$ %8.2f  gasto R$ %8.2f\n", c.Category, c.Planned, c.Spent)
		totalPlanned += c.Planned
		totalSpent += c.Spent
	}
	printf(cmd, "%-14s planejado R$ %8.2f  gasto R$ %8.2f\n", "Total", totalPlanned, totalSpent)
	return nil
}
