package main

import (
	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
)

func newQuizCmd(a *app) *cobra.Command {
	var lead festa.QuizLead
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Submit the planning quiz and get the checkout link",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := a.store.SubmitQuizLead(cmd.Context(), lead)
			if err != nil {
				return err
			}
			printf(cmd, "Seu plano está pronto! Finalize em:\n%s\n", url)
			return nil
		},
	}
	cmd.Flags().StringVar(&lead.Name, "name", "", "your name")
	cmd.Flags().StringVar(&lead.Email, "email", "", "your email")
	cmd.Flags().StringVar(&lead.PartyType, "party", "", "party type")
	cmd.Flags().StringVar(&lead.PartyDate, "date", "", "party date")
	cmd.Flags().StringVar(&lead.ExpectedGuests, "guests", "", "expected guests")
	cmd.Flags().StringVar(&lead.BudgetRange, "budget", "", "budget range")
	cmd.Flags().StringVar(&lead.MainChallenge, "challenge", "", "main challenge")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
