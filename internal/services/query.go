package services

import (
	"regexp"
	"strings"
)

// Shortcut is a named, pre-written JQL filter
type Shortcut struct {
	Flag  string
	Usage string
	Query string
}

// DefaultShortcut is used when neither a query nor a shortcut is given
const DefaultShortcut = "my-sprint"

// DefaultOrdering is appended to queries without an ORDER BY clause
const DefaultOrdering = "ORDER BY priority DESC"

// Shortcuts are evaluated in this order; the first active one wins
var Shortcuts = []Shortcut{
	{"my-issues", "Show issues assigned to me", "assignee = currentUser() ORDER BY priority DESC"},
	{"high-priority", "Show high priority issues", "priority in (Highest, High) ORDER BY priority DESC"},
	{"blocked", "Show blocked issues", "status = Blocked ORDER BY priority DESC"},
	{"in-progress", "Show in progress issues", `status = "In Progress" ORDER BY priority DESC`},
	{"overdue", "Show overdue issues", "due < now() ORDER BY priority DESC"},
	{"no-assignee", "Show unassigned issues", "assignee is EMPTY ORDER BY priority DESC"},
	{"reported-by-me", "Show issues reported by me", "reporter = currentUser() ORDER BY priority DESC"},
	{"blocked-by-me", "Show issues blocked by my issues", `issue in linkedIssues("is blocked by") AND assignee = currentUser() ORDER BY priority DESC`},
	{"blocking-me", "Show issues blocking my issues", `issue in linkedIssues("blocks") AND assignee = currentUser() ORDER BY priority DESC`},
	{"my-sprint", "Show my issues in the current sprint", "assignee in (currentUser()) and sprint in openSprints()"},
	{"my-sprint-status", "Show my issues in the current sprint by status", "assignee in (currentUser()) and sprint in openSprints() ORDER BY status DESC"},
}

var orderByPattern = regexp.MustCompile(`(?i)\border\s+by\b`)

// ResolveQuery picks the query to run. The first shortcut for which active
// returns true overrides query; a blank query with no active shortcut
// resolves to DefaultShortcut.
func ResolveQuery(query string, active func(flag string) bool) string {
	for _, s := range Shortcuts {
		if active != nil && active(s.Flag) {
			return s.Query
		}
	}

	if q := strings.TrimSpace(query); q != "" {
		return q
	}

	for _, s := range Shortcuts {
		if s.Flag == DefaultShortcut {
			return s.Query
		}
	}
	return ""
}

// EnsureOrdering appends DefaultOrdering unless jql already orders its
// results
func EnsureOrdering(jql string) string {
	if orderByPattern.MatchString(jql) {
		return jql
	}
	return strings.TrimSpace(jql) + " " + DefaultOrdering
}

// BuildQuery resolves and orders a query in one step
func BuildQuery(query string, active func(flag string) bool) string {
	return EnsureOrdering(ResolveQuery(query, active))
}
