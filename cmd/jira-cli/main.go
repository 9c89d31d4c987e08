package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jira-cli/internal/config"
	"jira-cli/internal/helpers"
	"jira-cli/internal/logger"
	"jira-cli/internal/repositories"
	"jira-cli/internal/services"
)

// errUsage marks malformed command lines
var errUsage = errors.New("invalid usage")

// app holds the state shared by all commands of one invocation
type app struct {
	configFile string
	debug      bool
	noColor    bool

	in       io.Reader
	out      io.Writer
	prompter *helpers.Prompter

	cfg    *config.Config
	issues *services.IssueService
}

func newApp(in io.Reader, out, promptOut io.Writer) *app {
	return &app{
		in:       in,
		out:      out,
		prompter: helpers.NewPrompter(in, promptOut, helpers.IsTerminal(in)),
	}
}

func main() {
	a := newApp(os.Stdin, color.Output, os.Stderr)
	err := a.run(context.Background(), os.Args[1:])
	_ = logger.Sync()

	if err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(exitCode(err))
	}
}

// run executes the command line args
func (a *app) run(ctx context.Context, args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(expandAliases(args))
	return cmd.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "jira-cli",
		Short: "Jira CLI - create, update and query Jira issues",
		Long: `jira-cli talks to the Jira REST API to create and update issues,
link them, add them to the current sprint and run JQL queries.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Configuration file path (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Log HTTP traffic and internal steps to stderr")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	rootCmd.AddCommand(
		a.getCmd(),
		a.createCmd(),
		a.updateCmd(),
		a.jqlCmd(),
	)

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	return rootCmd
}

// setup builds the configuration, logger and services once per invocation
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.noColor {
		helpers.DisableColor()
	}

	path, explicit := a.configFile, true
	if path == "" {
		path, explicit = config.DefaultPath(), false
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel, a.debug); err != nil {
		return fmt.Errorf("%w: log level %q: %v", config.ErrInvalidConfig, cfg.LogLevel, err)
	}

	repo, err := repositories.NewJiraRepository(&cfg.Jira)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	a.cfg = cfg
	a.issues = services.NewIssueService(repo, cfg)
	return nil
}

// usageArgs tags argument validation failures as usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, config.ErrInvalidConfig) {
		return 3
	}
	if errors.Is(err, services.ErrValidation) || errors.Is(err, errUsage) {
		return 2
	}
	return 1
}

func printWarnings(warnings []services.Warning) {
	for _, w := range warnings {
		helpers.PrintWarning("%v", w)
	}
}
