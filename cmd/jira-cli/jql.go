package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jira-cli/internal/services"
)

type jqlOptions struct {
	color bool
	limit int
}

func (a *app) jqlCmd() *cobra.Command {
	opts := &jqlOptions{}

	var jqlCmd = &cobra.Command{
		Use:   "jql [query]",
		Short: "Run a JQL query and show the results as a table",
		Long: `Run a JQL query, or one of the predefined shortcuts, and show the results.
The first shortcut flag given wins and replaces the query. Without a query or
shortcut --` + services.DefaultShortcut + ` is used. Queries without an ORDER BY clause
are sorted by priority.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runJQL(cmd, args, opts)
		},
	}

	f := jqlCmd.Flags()
	for _, s := range services.Shortcuts {
		f.Bool(s.Flag, false, s.Usage)
	}
	f.BoolVar(&opts.color, "color", false, "Colorize rows by priority")
	f.IntVar(&opts.limit, "limit", 0, "Maximum number of issues (default from config, 50)")

	return jqlCmd
}

func (a *app) runJQL(cmd *cobra.Command, args []string, opts *jqlOptions) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	jql := services.BuildQuery(query, func(flag string) bool {
		on, _ := cmd.Flags().GetBool(flag)
		return on
	})

	issues, err := a.issues.Search(cmd.Context(), jql, opts.limit)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		fmt.Fprintln(a.out, "No issues found matching the query.")
		return nil
	}

	services.RenderIssues(a.out, issues, opts.color && !a.noColor)
	return nil
}
