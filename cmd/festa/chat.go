package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
	"github.com/festaperfeita/festa/assist"
)

func newChatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the planning assistant",
	}

	send := &cobra.Command{
		Use:   "send <message...>",
		Short: "Send a message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			a.store.AddChatMessage(festa.NewChatMessage{Role: festa.RoleUser, Content: msg})
			reply := assist.Reply(msg)
			a.store.AddChatMessage(festa.NewChatMessage{Role: festa.RoleAssistant, Content: reply})
			printf(cmd, "%s\n", reply)
			return nil
		},
	}

	suggest := &cobra.Command{
		Use:   "suggest",
		Short: "Show suggested questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, q := range assist.SuggestedQuestions {
				printf(cmd, "- %s\n", q)
			}
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Clear the transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.store.ClearChat()
			printf(cmd, "Conversa limpa.\n")
			return nil
		},
	}

	cmd.AddCommand(send, suggest, clear)
	return cmd
}
