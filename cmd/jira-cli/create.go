package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jira-cli/internal/helpers"
	"jira-cli/internal/models"
	"jira-cli/internal/services"
)

type createOptions struct {
	project            string
	summary            string
	description        string
	descriptionFile    string
	assignee           string
	issueType          string
	epicName           string
	epicLink           string
	acceptanceCriteria string
	linkTarget         string
	linkType           string
	priority           string
	estimate           string
	fixVersion         string
	storyPoints        float64
	addToSprint        bool
	labels             string
	dryRun             bool
}

func (a *app) createCmd() *cobra.Command {
	opts := &createOptions{}

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new issue",
		Long: `Create a new issue, optionally linking it to another issue and adding
it to the active sprint of the configured board. Project key and summary are
prompted for when missing and stdin is a terminal.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreate(cmd, opts)
		},
	}

	f := createCmd.Flags()
	f.SetNormalizeFunc(normalizeAliases)
	f.StringVarP(&opts.project, "project", "P", "", "Jira project key (default $JIRA_PROJECT)")
	f.StringVarP(&opts.summary, "summary", "S", "", "Issue summary")
	f.StringVarP(&opts.description, "description", "D", "", `Issue description, \n and \t are expanded`)
	f.StringVar(&opts.descriptionFile, "description-file", "", "Read the description from a file, - for stdin")
	f.StringVarP(&opts.assignee, "assignee", "A", "", "Assignee user name")
	f.StringVarP(&opts.issueType, "issuetype", "T", "Task", "Issue type")
	f.StringVar(&opts.epicName, "epic-name", "", "Epic name, required for type Epic (alias --EN)")
	f.StringVar(&opts.epicLink, "epic-link", "", "Key of the epic this issue belongs to (alias --EL)")
	f.StringVar(&opts.acceptanceCriteria, "acceptance-criteria", "", "Acceptance criteria (alias --AC)")
	f.StringVarP(&opts.linkTarget, "links-jira", "L", "", "Issue key to link the new issue to")
	f.StringVar(&opts.linkType, "link-type", "", "Link type (default from config, Relates)")
	f.StringVar(&opts.priority, "priority", "", "Priority code: "+strings.Join(services.PriorityCodes, ", "))
	f.StringVarP(&opts.estimate, "estimate", "E", "", "Original estimate, e.g. 3d")
	f.StringVar(&opts.fixVersion, "fix-version", "", "Fix version name (alias --FV)")
	f.Float64Var(&opts.storyPoints, "story-points", 0, "Story points (alias --SP)")
	f.BoolVar(&opts.addToSprint, "add-to-current-sprint", false, "Add the issue to the active sprint (alias --ATS)")
	f.StringVar(&opts.labels, "labels", "", "Comma separated labels")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print the request instead of creating the issue")

	return createCmd
}

func (a *app) runCreate(cmd *cobra.Command, opts *createOptions) error {
	f := cmd.Flags()
	if err := checkPriority(f, opts.priority); err != nil {
		return err
	}

	description, err := a.description(f, opts.description, opts.descriptionFile)
	if err != nil {
		return err
	}

	project := opts.project
	if !f.Changed("project") {
		project = a.cfg.Jira.ProjectKey
	}

	in := models.IssueInput{
		Project:            &project,
		Summary:            &opts.summary,
		Description:        description,
		Assignee:           optional(f, "assignee", opts.assignee),
		IssueType:          &opts.issueType,
		Priority:           optional(f, "priority", opts.priority),
		AcceptanceCriteria: optional(f, "acceptance-criteria", opts.acceptanceCriteria),
		Estimate:           optional(f, "estimate", opts.estimate),
		EpicName:           optional(f, "epic-name", opts.epicName),
		EpicLink:           optional(f, "epic-link", opts.epicLink),
		FixVersion:         optional(f, "fix-version", opts.fixVersion),
		Labels:             optional(f, "labels", opts.labels),
		AddToSprint:        opts.addToSprint,
		LinkTarget:         optional(f, "links-jira", opts.linkTarget),
		LinkType:           opts.linkType,
	}
	if f.Changed("story-points") {
		in.StoryPoints = &opts.storyPoints
	}

	if err := a.promptMissing(&in); err != nil {
		return err
	}

	ctx := cmd.Context()
	if opts.dryRun {
		doc, warnings, err := a.issues.Plan(ctx, "", in)
		if err != nil {
			return err
		}
		printWarnings(warnings)
		helpers.PrintInfo("Dry run, no issue was created")
		return helpers.WriteJSON(a.out, map[string]interface{}{"fields": doc})
	}

	result, err := a.issues.Save(ctx, "", in)
	if err != nil {
		return err
	}

	helpers.PrintSuccess("Created issue: %s", result.Key)
	if result.Link != nil {
		helpers.PrintSuccess("Linked %s %s %s", result.Link.InwardKey, result.Link.Type, result.Link.OutwardKey)
	}
	printWarnings(result.Warnings)
	return nil
}

// promptMissing asks for the required values that were not given
func (a *app) promptMissing(in *models.IssueInput) error {
	if !a.prompter.Interactive() {
		return nil
	}

	ask := func(target **string, label string) error {
		if strings.TrimSpace(models.Value(*target)) != "" {
			return nil
		}
		value, err := a.prompter.Ask(label)
		if err != nil {
			if errors.Is(err, helpers.ErrNoInput) {
				return fmt.Errorf("%w: %v", services.ErrValidation, err)
			}
			return err
		}
		*target = &value
		return nil
	}

	if err := ask(&in.Project, "Enter project key"); err != nil {
		return err
	}
	if err := ask(&in.Summary, "Enter issue summary"); err != nil {
		return err
	}
	if services.NeedsEpicName(*in) {
		return ask(&in.EpicName, "Enter epic name")
	}
	return nil
}
