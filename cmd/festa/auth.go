package main

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sessions.SignIn(cmd.Context(), email, password); err != nil {
				return err
			}
			if u := a.store.User(); u != nil {
				printf(cmd, "Bem-vindo(a), %s!\n", u.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sessions.SignUp(cmd.Context(), email, password, name); err != nil {
				return err
			}
			printf(cmd, "Conta criada para %s.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear local state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.sessions.SignOut(cmd.Context())
			printf(cmd, "Até logo!\n")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := a.store.User()
			if u == nil {
				printf(cmd, "Não autenticado.\n")
				return nil
			}
			printf(cmd, "%s <%s>\n", u.Name, u.Email)
			if u.PartyType != "" {
				printf(cmd, "Festa: %s", u.PartyType)
				if u.PartyDate != "" {
					printf(cmd, " em %s", u.PartyDate)
				}
				printf(cmd, "\n")
			}
			if u.ExpectedGuests > 0 {
				printf(cmd, "Convidados esperados: %d\n", u.ExpectedGuests)
			}
			if u.TotalBudget > 0 {
				printf(cmd, "Orçamento total: R$ %.2f\n", u.TotalBudget)
			}
			return nil
		},
	}
}
