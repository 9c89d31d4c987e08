package main

import (
	"github.com/spf13/cobra"

	"jira-cli/internal/services"
)

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <issue-key>",
		Short: "Show a single issue",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			issue, err := a.issues.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			services.RenderIssue(a.out, *issue, false)
			return nil
		},
	}
}
