package services

import (
	"context"
	"errors"

	"jira-cli/internal/config"
	"jira-cli/internal/models"
)

var errBoom = errors.New("boom")

// fakeTracker records every call and fails where told to
type fakeTracker struct {
	sprint    *models.Sprint
	sprintErr error
	createErr error
	updateErr error
	linkErr   error
	transErr  error

	calls      []string
	created    models.IssueDocument
	updated    models.IssueDocument
	links      []models.LinkRequest
	transition string
	searched   string
	limit      int
}

func (f *fakeTracker) ActiveSprint(ctx context.Context, boardID int) (*models.Sprint, error) {
	f.calls = append(f.calls, "sprint")
	return f.sprint, f.sprintErr
}

func (f *fakeTracker) CreateIssue(ctx context.Context, fields models.IssueDocument) (string, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = fields
	return "ENG-100", nil
}

func (f *fakeTracker) UpdateIssue(ctx context.Context, key string, fields models.IssueDocument) error {
	f.calls = append(f.calls, "update")
	f.updated = fields
	return f.updateErr
}

func (f *fakeTracker) GetIssue(ctx context.Context, key string) (*models.IssueRecord, error) {
	f.calls = append(f.calls, "get")
	return &models.IssueRecord{Key: key}, nil
}

func (f *fakeTracker) SearchIssues(ctx context.Context, jql string, maxResults int) ([]models.IssueRecord, error) {
	f.calls = append(f.calls, "search")
	f.searched = jql
	f.limit = maxResults
	return nil, nil
}

func (f *fakeTracker) CreateLink(ctx context.Context, link models.LinkRequest) error {
	f.calls = append(f.calls, "link")
	if f.linkErr != nil {
		return f.linkErr
	}
	f.links = append(f.links, link)
	return nil
}

func (f *fakeTracker) TransitionIssue(ctx context.Context, key, status string) error {
	f.calls = append(f.calls, "transition")
	f.transition = status
	return f.transErr
}

func testConfig(boardID int) *config.Config {
	cfg := config.Default()
	cfg.Jira.BoardID = boardID
	return cfg
}
