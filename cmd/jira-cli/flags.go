package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"jira-cli/internal/helpers"
	"jira-cli/internal/services"
)

// flagAliases maps the two-letter spellings to their long flag names.
// pflag shorthands are single characters, so these are accepted as --EN etc.
var flagAliases = map[string]string{
	"EN":  "epic-name",
	"EL":  "epic-link",
	"AC":  "acceptance-criteria",
	"FV":  "fix-version",
	"SP":  "story-points",
	"ATS": "add-to-current-sprint",
}

// expandAliases rewrites -EN, -ATS etc. to their double dash form. pflag
// would otherwise read -ATS as the shorthand -A with value "TS".
func expandAliases(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") {
			name, value, hasValue := strings.Cut(arg[1:], "=")
			if _, ok := flagAliases[name]; ok {
				arg = "--" + name
				if hasValue {
					arg += "=" + value
				}
			}
		}
		out = append(out, arg)
	}
	return out
}

func normalizeAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if long, ok := flagAliases[name]; ok {
		name = long
	}
	return pflag.NormalizedName(name)
}

// optional returns nil unless the flag was given on the command line
func optional(flags *pflag.FlagSet, name, value string) *string {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}

func checkPriority(flags *pflag.FlagSet, code string) error {
	if !flags.Changed("priority") {
		return nil
	}
	for _, c := range services.PriorityCodes {
		if strings.EqualFold(strings.TrimSpace(code), c) {
			return nil
		}
	}
	return fmt.Errorf("%w: --priority must be one of %s, got %q",
		errUsage, strings.Join(services.PriorityCodes, ", "), code)
}

// description resolves --description and --description-file
func (a *app) description(flags *pflag.FlagSet, text, file string) (*string, error) {
	if flags.Changed("description-file") {
		if flags.Changed("description") {
			return nil, fmt.Errorf("%w: --description and --description-file cannot be used together", errUsage)
		}
		content, err := helpers.ReadFile(file, a.in)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", services.ErrValidation, err)
		}
		content = strings.TrimRight(content, "\n")
		return &content, nil
	}
	return optional(flags, "description", text), nil
}
