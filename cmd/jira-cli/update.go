package main

import (
	"strings"

	"github.com/spf13/cobra"

	"jira-cli/internal/helpers"
	"jira-cli/internal/models"
	"jira-cli/internal/services"
)

type updateOptions struct {
	summary         string
	description     string
	descriptionFile string
	status          string
	assignee        string
	priority        string
	labels          string
	dryRun          bool
}

func (a *app) updateCmd() *cobra.Command {
	opts := &updateOptions{}

	var updateCmd = &cobra.Command{
		Use:   "update <issue-key>",
		Short: "Update an existing issue",
		Long:  "Update the fields of an existing issue and optionally move it to another status.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd, args[0], opts)
		},
	}

	f := updateCmd.Flags()
	f.StringVar(&opts.summary, "summary", "", "New summary")
	f.StringVar(&opts.description, "description", "", `New description, \n and \t are expanded`)
	f.StringVar(&opts.descriptionFile, "description-file", "", "Read the new description from a file, - for stdin")
	f.StringVar(&opts.status, "status", "", "Transition the issue to this status")
	f.StringVar(&opts.assignee, "assignee", "", "New assignee user name")
	f.StringVar(&opts.priority, "priority", "", "Priority code: "+strings.Join(services.PriorityCodes, ", "))
	f.StringVar(&opts.labels, "labels", "", "Comma separated labels, replaces the current ones")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print the request instead of updating the issue")

	return updateCmd
}

func (a *app) runUpdate(cmd *cobra.Command, key string, opts *updateOptions) error {
	f := cmd.Flags()
	if err := checkPriority(f, opts.priority); err != nil {
		return err
	}

	description, err := a.description(f, opts.description, opts.descriptionFile)
	if err != nil {
		return err
	}

	in := models.IssueInput{
		Summary:     optional(f, "summary", opts.summary),
		Description: description,
		Assignee:    optional(f, "assignee", opts.assignee),
		Priority:    optional(f, "priority", opts.priority),
		Labels:      optional(f, "labels", opts.labels),
		Status:      optional(f, "status", opts.status),
	}

	ctx := cmd.Context()
	if opts.dryRun {
		doc, warnings, err := a.issues.Plan(ctx, key, in)
		if err != nil {
			return err
		}
		printWarnings(warnings)
		helpers.PrintInfo("Dry run, %s was not changed", key)
		if in.Status != nil {
			helpers.PrintInfo("Would transition %s to %s", key, *in.Status)
		}
		return helpers.WriteJSON(a.out, map[string]interface{}{"fields": doc})
	}

	// A failed transition still returns the result of the field update.
	result, err := a.issues.Save(ctx, key, in)
	if result != nil && len(result.Document) > 0 {
		helpers.PrintSuccess("Updated issue: %s", result.Key)
	}
	if err != nil {
		return err
	}

	if result.Status != "" {
		helpers.PrintSuccess("Moved %s to %s", result.Key, result.Status)
	}
	printWarnings(result.Warnings)
	return nil
}
