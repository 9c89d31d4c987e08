package services

import (
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"jira-cli/internal/models"
)

// IssueColumns are the table headers for search results
var IssueColumns = []string{"Key", "Summary", "Status", "Type", "Priority", "Assignee", "Reporter"}

// DetailColumns are the table headers for a single issue
var DetailColumns = append(append([]string{}, IssueColumns...), "Created", "Updated")

const timeLayout = "2006-01-02 15:04"

var priorityColors = map[string]color.Attribute{
	"Showstopper":       color.FgRed,
	"P0 - Must have":    color.FgMagenta,
	"P1 - Should have":  color.FgYellow,
	"P2 - Nice to have": color.FgBlue,
	UnprioritizedLabel:  color.FgWhite,
}

// PriorityColor returns the foreground color for a priority name. Asterisks
// around the name are ignored; unknown names are white.
func PriorityColor(priority string) color.Attribute {
	if c, ok := priorityColors[strings.Trim(strings.TrimSpace(priority), "*")]; ok {
		return c
	}
	return color.FgWhite
}

// RenderIssues writes issues as a table. With colorize set every cell of a
// row takes the color of the row's priority.
func RenderIssues(w io.Writer, issues []models.IssueRecord, colorize bool) {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, styleRow(issueRow(issue), issue.Priority, colorize))
	}
	renderTable(w, IssueColumns, rows)
}

// RenderIssue writes a single issue including its timestamps
func RenderIssue(w io.Writer, issue models.IssueRecord, colorize bool) {
	row := append(issueRow(issue), formatTime(issue.Created), formatTime(issue.Updated))
	renderTable(w, DetailColumns, [][]string{styleRow(row, issue.Priority, colorize)})
}

func issueRow(issue models.IssueRecord) []string {
	return []string{
		issue.Key,
		issue.Summary,
		issue.Status,
		issue.Type,
		issue.Priority,
		issue.Assignee,
		issue.Reporter,
	}
}

func styleRow(row []string, priority string, colorize bool) []string {
	if !colorize {
		return row
	}

	c := color.New(PriorityColor(priority))
	c.EnableColor()
	for i, cell := range row {
		row[i] = c.Sprint(cell)
	}
	return row
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}
