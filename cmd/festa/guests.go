package main

import (
	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
)

func newGuestsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guests",
		Short: "Manage the guest list",
	}

	var email, phone string
	var plusOne bool
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Invite a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.AddGuest(cmd.Context(), festa.NewGuest{
				Name:    args[0],
				Email:   email,
				Phone:   phone,
				PlusOne: plusOne,
			})
			return runList(a, cmd)
		},
	}
	add.Flags().StringVar(&email, "email", "", "guest email")
	add.Flags().StringVar(&phone, "phone", "", "guest phone")
	add.Flags().BoolVar(&plusOne, "plus-one", false, "guest brings a plus one")

	list := &cobra.Command{
		Use:   "list",
		Short: "List guests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(a, cmd)
		},
	}

	confirm := &cobra.Command{
		Use:   "confirm <id>",
		Short: "Mark a guest as confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes := true
			a.store.UpdateGuest(cmd.Context(), args[0], festa.GuestPatch{Confirmed: &yes})
			return runList(a, cmd)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.RemoveGuest(cmd.Context(), args[0])
			return runList(a, cmd)
		},
	}

	cmd.AddCommand(add, list, confirm, remove)
	return cmd
}

func runList(a *app, cmd *cobra.Command) error {
	guests := a.store.Guests()
	if len(guests) == 0 {
		printf(cmd, "Nenhum convidado ainda.\n")
		return nil
	}
	for _, g := range guests {
		status := " "
		if g.Confirmed {
			status = "x"
		}
		printf(cmd, "[%s] %s  %s", status, g.ID, g.Name)
		if g.PlusOne {
			printf(cmd, " (+1)")
		}
		printf(cmd, "\n")
	}
	return nil
}
