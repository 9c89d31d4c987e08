package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-cli/internal/config"
	"jira-cli/internal/models"
)

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"S", "Showstopper"},
		{"P0", "P0 - Must have"},
		{"P1", "P1 - Should have"},
		{"P2", "P2 - Nice to have"},
		{" p1 ", "P1 - Should have"},
		{"P3", UnprioritizedLabel},
		{"", UnprioritizedLabel},
		{"Highest", UnprioritizedLabel},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityLabel(tt.code))
		})
	}
}

func newMapper(tracker *fakeTracker, boardID int) *FieldMapper {
	return NewFieldMapper(config.Default().CustomFields, boardID, tracker)
}

func TestMapMinimalInput(t *testing.T) {
	doc, warnings, err := newMapper(&fakeTracker{}, 0).Map(context.Background(), models.IssueInput{
		Project:  models.String("ENG"),
		Summary:  models.String("Fix bug"),
		Priority: models.String("P1"),
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, models.JiraProject{Key: "ENG"}, doc["project"])
	assert.Equal(t, "Fix bug", doc["summary"])
	assert.Equal(t, models.JiraNamed{Name: "P1 - Should have"}, doc["priority"])
	assert.False(t, doc.Has("assignee"))
	assert.Len(t, doc, 3)
}

func TestMapOmitsUnsuppliedInputs(t *testing.T) {
	doc, _, err := newMapper(&fakeTracker{}, 0).Map(context.Background(), models.IssueInput{})
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestMapAllFields(t *testing.T) {
	ids := config.Default().CustomFields
	doc, warnings, err := newMapper(&fakeTracker{sprint: &models.Sprint{ID: 7, Name: "Sprint 7"}}, 42).Map(context.Background(), models.IssueInput{
		Project:            models.String("ENG"),
		Summary:            models.String("Launch"),
		Description:        models.String(`line one\nline two\tindented`),
		Assignee:           models.String("alice"),
		IssueType:          models.String("epic"),
		Priority:           models.String("S"),
		AcceptanceCriteria: models.String("it works"),
		Estimate:           models.String("3d"),
		StoryPoints:        models.Float(5),
		EpicName:           models.String("Launch epic"),
		EpicLink:           models.String("ENG-1"),
		FixVersion:         models.String("1.2.0"),
		Labels:             models.String("backend, urgent,, "),
		AddToSprint:        true,
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "line one\nline two\tindented", doc["description"])
	assert.Equal(t, models.JiraNamed{Name: "alice"}, doc["assignee"])
	assert.Equal(t, models.JiraNamed{Name: "epic"}, doc["issuetype"])
	assert.Equal(t, models.JiraNamed{Name: "Showstopper"}, doc["priority"])
	assert.Equal(t, "it works", doc[ids.AcceptanceCriteria])
	assert.Equal(t, "3d", doc[ids.Estimate])
	assert.Equal(t, 5.0, doc[ids.StoryPoints])
	assert.Equal(t, "Launch epic", doc[ids.EpicName])
	assert.Equal(t, "ENG-1", doc[ids.EpicLink])
	assert.Equal(t, []models.JiraNamed{{Name: "1.2.0"}}, doc["fixVersions"])
	assert.Equal(t, []string{"backend", "urgent"}, doc["labels"])
	assert.Equal(t, 7, doc[ids.Sprint])
}

func TestMapBlankAssigneeIsOmitted(t *testing.T) {
	doc, _, err := newMapper(&fakeTracker{}, 0).Map(context.Background(), models.IssueInput{
		Assignee: models.String("  "),
	})
	require.NoError(t, err)
	assert.False(t, doc.Has("assignee"))
}

func TestMapEpicRequiresEpicName(t *testing.T) {
	tracker := &fakeTracker{}
	_, _, err := newMapper(tracker, 42).Map(context.Background(), models.IssueInput{
		Project:     models.String("ENG"),
		Summary:     models.String("Launch"),
		IssueType:   models.String("Epic"),
		AddToSprint: true,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, tracker.calls)
}

func TestMapSprintWarnings(t *testing.T) {
	tests := []struct {
		name    string
		tracker *fakeTracker
		boardID int
		calls   int
	}{
		{"no board", &fakeTracker{}, 0, 0},
		{"no active sprint", &fakeTracker{}, 42, 1},
		{"lookup fails", &fakeTracker{sprintErr: errBoom}, 42, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, warnings, err := newMapper(tt.tracker, tt.boardID).Map(context.Background(), models.IssueInput{
				Summary:     models.String("Fix bug"),
				AddToSprint: true,
			})
			require.NoError(t, err)
			require.Len(t, warnings, 1)
			assert.False(t, doc.Has(config.Default().CustomFields.Sprint))
			assert.Equal(t, "Fix bug", doc["summary"])
			assert.Len(t, tt.tracker.calls, tt.calls)
		})
	}
}

func TestSplitLabels(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitLabels(" a ,b,"))
	assert.Equal(t, []string{}, SplitLabels(""))
}

func TestValidateCreate(t *testing.T) {
	assert.ErrorIs(t, ValidateCreate(models.IssueInput{Summary: models.String("x")}), ErrValidation)
	assert.ErrorIs(t, ValidateCreate(models.IssueInput{Project: models.String("ENG"), Summary: models.String(" ")}), ErrValidation)
	assert.NoError(t, ValidateCreate(models.IssueInput{Project: models.String("ENG"), Summary: models.String("x")}))
}

func TestValidateUpdate(t *testing.T) {
	assert.ErrorIs(t, ValidateUpdate("ENG-1", models.IssueInput{}), ErrValidation)
	assert.ErrorIs(t, ValidateUpdate("", models.IssueInput{Summary: models.String("x")}), ErrValidation)
	assert.NoError(t, ValidateUpdate("ENG-1", models.IssueInput{Status: models.String("Done")}))
	assert.NoError(t, ValidateUpdate("ENG-1", models.IssueInput{Description: models.String("")}))
}

func TestValidateUpdateRejectsBlankStatus(t *testing.T) {
	assert.ErrorIs(t, ValidateUpdate("ENG-1", models.IssueInput{Status: models.String("")}), ErrValidation)
	assert.ErrorIs(t, ValidateUpdate("ENG-1", models.IssueInput{
		Summary: models.String("x"),
		Status:  models.String("  "),
	}), ErrValidation)
}
