package models

import "time"

// IssueInput holds the user supplied values for creating or updating an
// issue. A nil field was not supplied; a pointer to "" was supplied empty.
type IssueInput struct {
	Project            *string
	Summary            *string
	Description        *string
	Assignee           *string
	IssueType          *string
	Priority           *string
	AcceptanceCriteria *string
	Estimate           *string
	StoryPoints        *float64
	EpicName           *string
	EpicLink           *string
	FixVersion         *string
	Labels             *string
	AddToSprint        bool
	LinkTarget         *string
	LinkType           string
	Status             *string
}

// String returns a pointer to s
func String(s string) *string {
	return &s
}

// Float returns a pointer to f
func Float(f float64) *float64 {
	return &f
}

// Value dereferences p, returning "" for nil
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IssueDocument is the "fields" object sent to the issue endpoints. Keys are
// either well-known field names or custom field identifiers.
type IssueDocument map[string]interface{}

// Has reports whether key is set
func (d IssueDocument) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// JiraProject represents a JIRA project reference
type JiraProject struct {
	Key string `json:"key"`
}

// JiraNamed represents any JIRA object referenced by name (issue type,
// priority, user, version)
type JiraNamed struct {
	Name string `json:"name"`
}

// LinkRequest describes a link between two issues
type LinkRequest struct {
	Type       string
	InwardKey  string
	OutwardKey string
}

// Sprint represents an agile sprint
type Sprint struct {
	ID    int
	Name  string
	State string
}

// IssueRecord is the flattened view of an issue used for display. Missing
// nested values are empty strings or zero times.
type IssueRecord struct {
	Key      string
	Summary  string
	Status   string
	Type     string
	Priority string
	Assignee string
	Reporter string
	Created  time.Time
	Updated  time.Time
}
