package main

import (
	"github.com/spf13/cobra"

	"github.com/festaperfeita/festa"
	"github.com/festaperfeita/festa/assist"
)

func newTemplateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate party content from the canned template library",
	}

	var theme string
	generate := &cobra.Command{
		Use:   "generate <cardapio|decoracao|playlist|checklist>",
		Short: "Generate content for the profile's party theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partyType := festa.PartyType(theme)
			if partyType == "" {
				if u := a.store.User(); u != nil {
					partyType = u.PartyType
				}
			}
			content, err := assist.Generate(partyType, festa.TemplateType(args[0]))
			if err != nil {
				return err
			}
			a.store.AddTemplate(cmd.Context(), festa.NewTemplate{
				Type:    festa.TemplateType(args[0]),
				Content: content,
			})
			printf(cmd, "%s\n", content)
			return nil
		},
	}
	generate.Flags().StringVar(&theme, "theme", "", "override the party theme (natal, reveillon, ...)")

	themes := &cobra.Command{
		Use:   "themes",
		Short: "List themes with dedicated content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := assist.Themes()
			if err != nil {
				return err
			}
			for _, th := range ts {
				printf(cmd, "%s\n", th)
			}
			return nil
		},
	}

	cmd.AddCommand(generate, themes)
	return cmd
}
