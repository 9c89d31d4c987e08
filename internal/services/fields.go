package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jira-cli/internal/config"
	"jira-cli/internal/logger"
	"jira-cli/internal/models"
)

// UnprioritizedLabel is used for every priority code outside the table
const UnprioritizedLabel = "Unprioritized"

var priorityLabels = map[string]string{
	"S":  "Showstopper",
	"P0": "P0 - Must have",
	"P1": "P1 - Should have",
	"P2": "P2 - Nice to have",
}

// PriorityCodes lists the accepted --priority values
var PriorityCodes = []string{"S", "P0", "P1", "P2"}

// PriorityLabel translates a short priority code into the tracker's name
func PriorityLabel(code string) string {
	if label, ok := priorityLabels[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return label
	}
	return UnprioritizedLabel
}

// SprintFinder looks up the active sprint of a board
type SprintFinder interface {
	ActiveSprint(ctx context.Context, boardID int) (*models.Sprint, error)
}

// FieldMapper builds issue documents from user input
type FieldMapper struct {
	fields  config.CustomFieldIDs
	boardID int
	sprints SprintFinder
}

// NewFieldMapper creates a mapper writing custom values to the given field
// ids. sprints may be nil when sprint assignment is never requested.
func NewFieldMapper(fields config.CustomFieldIDs, boardID int, sprints SprintFinder) *FieldMapper {
	return &FieldMapper{
		fields:  fields,
		boardID: boardID,
		sprints: sprints,
	}
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Map translates in into an issue document. Only supplied inputs produce
// keys. A failed sprint lookup is reported as a warning and leaves the
// sprint field out.
func (m *FieldMapper) Map(ctx context.Context, in models.IssueInput) (models.IssueDocument, []Warning, error) {
	if err := validateEpic(in); err != nil {
		return nil, nil, err
	}

	doc := models.IssueDocument{}

	if in.Project != nil {
		doc["project"] = models.JiraProject{Key: *in.Project}
	}
	if in.Summary != nil {
		doc["summary"] = *in.Summary
	}
	if in.Description != nil {
		doc["description"] = escapes.Replace(*in.Description)
	}
	if in.IssueType != nil {
		doc["issuetype"] = models.JiraNamed{Name: *in.IssueType}
	}
	if in.Priority != nil {
		doc["priority"] = models.JiraNamed{Name: PriorityLabel(*in.Priority)}
	}
	if a := strings.TrimSpace(models.Value(in.Assignee)); a != "" {
		doc["assignee"] = models.JiraNamed{Name: a}
	}
	if in.AcceptanceCriteria != nil {
		doc[m.fields.AcceptanceCriteria] = *in.AcceptanceCriteria
	}
	if in.Estimate != nil {
		doc[m.fields.Estimate] = *in.Estimate
	}
	if in.StoryPoints != nil {
		doc[m.fields.StoryPoints] = *in.StoryPoints
	}
	if in.EpicName != nil {
		doc[m.fields.EpicName] = *in.EpicName
	}
	if in.EpicLink != nil {
		doc[m.fields.EpicLink] = *in.EpicLink
	}
	if in.FixVersion != nil {
		doc["fixVersions"] = []models.JiraNamed{{Name: *in.FixVersion}}
	}
	if in.Labels != nil {
		doc["labels"] = SplitLabels(*in.Labels)
	}

	var warnings []Warning
	if in.AddToSprint {
		sprint, err := m.activeSprint(ctx)
		if err != nil {
			warnings = append(warnings, Warning{Op: "add issue to the current sprint", Err: err})
		} else {
			doc[m.fields.Sprint] = sprint.ID
		}
	}

	return doc, warnings, nil
}

func (m *FieldMapper) activeSprint(ctx context.Context) (*models.Sprint, error) {
	if m.boardID <= 0 {
		return nil, fmt.Errorf("no board configured, set %s", config.EnvBoardID)
	}
	if m.sprints == nil {
		return nil, fmt.Errorf("sprint lookup unavailable")
	}

	sprint, err := m.sprints.ActiveSprint(ctx, m.boardID)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, fmt.Errorf("board %d has no active sprint", m.boardID)
	}

	logger.GetLogger().Debug("resolved active sprint",
		zap.Int("board", m.boardID),
		zap.Int("sprint", sprint.ID),
		zap.String("name", sprint.Name))
	return sprint, nil
}

// SplitLabels splits a comma separated list, dropping blank entries
func SplitLabels(s string) []string {
	labels := []string{}
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

// NeedsEpicName reports whether in is an epic without an epic name
func NeedsEpicName(in models.IssueInput) bool {
	return isEpic(in.IssueType) && strings.TrimSpace(models.Value(in.EpicName)) == ""
}

func isEpic(issueType *string) bool {
	return strings.EqualFold(strings.TrimSpace(models.Value(issueType)), "Epic")
}

func validateEpic(in models.IssueInput) error {
	if NeedsEpicName(in) {
		return validationError("issue type Epic requires an epic name")
	}
	return nil
}

// ValidateCreate checks the inputs required to create an issue
func ValidateCreate(in models.IssueInput) error {
	if strings.TrimSpace(models.Value(in.Project)) == "" {
		return validationError("project key is required")
	}
	if strings.TrimSpace(models.Value(in.Summary)) == "" {
		return validationError("summary is required")
	}
	return validateEpic(in)
}

// ValidateUpdate checks that an update changes something
func ValidateUpdate(key string, in models.IssueInput) error {
	if strings.TrimSpace(key) == "" {
		return validationError("issue key is required")
	}
	if !hasChanges(in) {
		return validationError("nothing to update for %s", key)
	}
	if in.Status != nil && strings.TrimSpace(*in.Status) == "" {
		return validationError("status must not be blank")
	}
	return validateEpic(in)
}

func hasChanges(in models.IssueInput) bool {
	for _, p := range []*string{
		in.Project, in.Summary, in.Description, in.Assignee, in.IssueType,
		in.Priority, in.AcceptanceCriteria, in.Estimate, in.EpicName,
		in.EpicLink, in.FixVersion, in.Labels, in.LinkTarget, in.Status,
	} {
		if p != nil {
			return true
		}
	}
	return in.StoryPoints != nil || in.AddToSprint
}
