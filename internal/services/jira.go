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

// Tracker is the remote issue tracker
type Tracker interface {
	SprintFinder
	CreateIssue(ctx context.Context, fields models.IssueDocument) (string, error)
	UpdateIssue(ctx context.Context, key string, fields models.IssueDocument) error
	GetIssue(ctx context.Context, key string) (*models.IssueRecord, error)
	SearchIssues(ctx context.Context, jql string, maxResults int) ([]models.IssueRecord, error)
	CreateLink(ctx context.Context, link models.LinkRequest) error
	TransitionIssue(ctx context.Context, key, status string) error
}

// IssueService handles JIRA business logic
type IssueService struct {
	tracker Tracker
	mapper  *FieldMapper
	config  *config.JiraConfig
}

// NewIssueService creates a new issue service
func NewIssueService(tracker Tracker, cfg *config.Config) *IssueService {
	return &IssueService{
		tracker: tracker,
		mapper:  NewFieldMapper(cfg.CustomFields, cfg.Jira.BoardID, tracker),
		config:  &cfg.Jira,
	}
}

// SaveResult describes what Save did
type SaveResult struct {
	Key      string
	Created  bool
	Document models.IssueDocument
	Link     *models.LinkRequest
	Status   string
	Warnings []Warning
}

// Plan validates in and maps it to the document Save would send. An empty
// key plans a creation.
func (s *IssueService) Plan(ctx context.Context, key string, in models.IssueInput) (models.IssueDocument, []Warning, error) {
	if key == "" {
		if err := ValidateCreate(in); err != nil {
			return nil, nil, err
		}
	} else if err := ValidateUpdate(key, in); err != nil {
		return nil, nil, err
	}

	return s.mapper.Map(ctx, in)
}

// Save creates an issue when key is empty and updates issue key otherwise.
// Linking is attempted after the primary mutation and only produces a
// warning on failure. A requested status change is applied last.
func (s *IssueService) Save(ctx context.Context, key string, in models.IssueInput) (*SaveResult, error) {
	doc, warnings, err := s.Plan(ctx, key, in)
	if err != nil {
		return nil, err
	}

	log := logger.GetLogger()
	result := &SaveResult{Key: key, Document: doc, Warnings: warnings}

	if key == "" {
		newKey, err := s.tracker.CreateIssue(ctx, doc)
		if err != nil {
			return nil, &OperationError{Op: "create issue", Err: err}
		}
		result.Key = newKey
		result.Created = true
		log.Debug("created issue", zap.String("key", newKey), zap.Int("fields", len(doc)))
	} else if len(doc) > 0 {
		if err := s.tracker.UpdateIssue(ctx, key, doc); err != nil {
			return nil, &OperationError{Op: "update issue " + key, Err: err}
		}
		log.Debug("updated issue", zap.String("key", key), zap.Int("fields", len(doc)))
	}

	if target := strings.TrimSpace(models.Value(in.LinkTarget)); target != "" {
		link := models.LinkRequest{
			Type:       s.linkType(in),
			InwardKey:  result.Key,
			OutwardKey: target,
		}
		if err := s.tracker.CreateLink(ctx, link); err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Op:  fmt.Sprintf("link %s to %s", link.InwardKey, link.OutwardKey),
				Err: err,
			})
		} else {
			result.Link = &link
		}
	}

	if status := strings.TrimSpace(models.Value(in.Status)); status != "" && key != "" {
		if err := s.tracker.TransitionIssue(ctx, key, status); err != nil {
			return result, &OperationError{Op: "transition " + key, Err: err}
		}
		result.Status = status
	}

	return result, nil
}

func (s *IssueService) linkType(in models.IssueInput) string {
	if t := strings.TrimSpace(in.LinkType); t != "" {
		return t
	}
	return s.config.LinkType
}

// Get fetches a single issue
func (s *IssueService) Get(ctx context.Context, key string) (*models.IssueRecord, error) {
	if strings.TrimSpace(key) == "" {
		return nil, validationError("issue key is required")
	}

	issue, err := s.tracker.GetIssue(ctx, key)
	if err != nil {
		return nil, &OperationError{Op: "get issue " + key, Err: err}
	}
	return issue, nil
}

// Search runs jql as a single request of at most limit issues. A limit of
// zero or less uses the configured maximum.
func (s *IssueService) Search(ctx context.Context, jql string, limit int) ([]models.IssueRecord, error) {
	if limit <= 0 {
		limit = s.config.MaxResults
	}

	logger.GetLogger().Debug("searching issues", zap.String("jql", jql), zap.Int("limit", limit))
	issues, err := s.tracker.SearchIssues(ctx, jql, limit)
	if err != nil {
		return nil, &OperationError{Op: "execute JQL query", Err: err}
	}
	return issues, nil
}
