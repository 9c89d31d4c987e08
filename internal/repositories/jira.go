package repositories

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/andygrunwald/go-jira"

	"jira-cli/internal/config"
	"jira-cli/internal/models"
)

// displayFields are requested from the search endpoint for table output
var displayFields = []string{"summary", "status", "issuetype", "priority", "assignee", "reporter", "created", "updated"}

// JiraRepository handles JIRA API interactions
type JiraRepository struct {
	config *config.JiraConfig
	client *jira.Client
}

// NewJiraRepository creates a new JIRA repository authenticating with the
// configured username and API token.
func NewJiraRepository(jiraConfig *config.JiraConfig) (*JiraRepository, error) {
	tp := jira.BasicAuthTransport{
		Username:  jiraConfig.Username,
		Password:  jiraConfig.APIToken,
		Transport: &loggingTransport{next: http.DefaultTransport},
	}
	httpClient := tp.Client()
	httpClient.Timeout = time.Duration(jiraConfig.Timeout) * time.Second

	client, err := jira.NewClient(httpClient, jiraConfig.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("cannot create Jira client: %w", err)
	}

	return &JiraRepository{
		config: jiraConfig,
		client: client,
	}, nil
}

// CreateIssue creates a new JIRA issue from fields and returns its key
func (r *JiraRepository) CreateIssue(ctx context.Context, fields models.IssueDocument) (string, error) {
	req, err := r.client.NewRequestWithContext(ctx, http.MethodPost, "rest/api/2/issue", map[string]interface{}{"fields": fields})
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	created := new(jira.Issue)
	resp, err := r.client.Do(req, created)
	if err != nil {
		return "", jira.NewJiraError(resp, err)
	}

	return created.Key, nil
}

// UpdateIssue sets fields on an existing issue
func (r *JiraRepository) UpdateIssue(ctx context.Context, key string, fields models.IssueDocument) error {
	resp, err := r.client.Issue.UpdateIssueWithContext(ctx, key, map[string]interface{}{"fields": fields})
	if err != nil {
		return jira.NewJiraError(resp, err)
	}
	closeBody(resp)
	return nil
}

// GetIssue fetches a single issue
func (r *JiraRepository) GetIssue(ctx context.Context, key string) (*models.IssueRecord, error) {
	issue, _, err := r.client.Issue.GetWithContext(ctx, key, &jira.GetQueryOptions{
		Fields: strings.Join(displayFields, ","),
	})
	if err != nil {
		return nil, err
	}

	record := toRecord(issue)
	return &record, nil
}

// SearchIssues runs a JQL query and returns at most maxResults issues,
// falling back to the configured limit
func (r *JiraRepository) SearchIssues(ctx context.Context, jql string, maxResults int) ([]models.IssueRecord, error) {
	if maxResults <= 0 {
		maxResults = r.config.MaxResults
	}

	issues, _, err := r.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		MaxResults: maxResults,
		Fields:     displayFields,
	})
	if err != nil {
		return nil, err
	}

	records := make([]models.IssueRecord, 0, len(issues))
	for i := range issues {
		records = append(records, toRecord(&issues[i]))
	}
	return records, nil
}

// CreateLink links two issues
func (r *JiraRepository) CreateLink(ctx context.Context, link models.LinkRequest) error {
	resp, err := r.client.Issue.AddLinkWithContext(ctx, &jira.IssueLink{
		Type:         jira.IssueLinkType{Name: link.Type},
		InwardIssue:  &jira.Issue{Key: link.InwardKey},
		OutwardIssue: &jira.Issue{Key: link.OutwardKey},
	})
	if err != nil {
		return err
	}
	closeBody(resp)
	return nil
}

// ActiveSprint returns the active sprint of a board, or nil when the board
// has none
func (r *JiraRepository) ActiveSprint(ctx context.Context, boardID int) (*models.Sprint, error) {
	list, _, err := r.client.Board.GetAllSprintsWithOptionsWithContext(ctx, boardID, &jira.GetAllSprintsOptions{
		State: "active",
	})
	if err != nil {
		return nil, err
	}

	for _, s := range list.Values {
		if strings.EqualFold(s.State, "active") {
			return &models.Sprint{ID: s.ID, Name: s.Name, State: s.State}, nil
		}
	}
	return nil, nil
}

// TransitionIssue moves an issue to the named status using the first
// transition whose name or target status matches
func (r *JiraRepository) TransitionIssue(ctx context.Context, key, status string) error {
	transitions, _, err := r.client.Issue.GetTransitionsWithContext(ctx, key)
	if err != nil {
		return err
	}

	var available []string
	for _, t := range transitions {
		if strings.EqualFold(t.Name, status) || strings.EqualFold(t.To.Name, status) {
			resp, err := r.client.Issue.DoTransitionWithContext(ctx, key, t.ID)
			if err != nil {
				return err
			}
			closeBody(resp)
			return nil
		}
		available = append(available, t.To.Name)
	}

	return fmt.Errorf("no transition to status %q available for %s (available: %s)", status, key, strings.Join(available, ", "))
}

func toRecord(issue *jira.Issue) models.IssueRecord {
	record := models.IssueRecord{Key: issue.Key}
	f := issue.Fields
	if f == nil {
		return record
	}

	record.Summary = f.Summary
	record.Type = f.Type.Name
	record.Created = time.Time(f.Created)
	record.Updated = time.Time(f.Updated)
	if f.Status != nil {
		record.Status = f.Status.Name
	}
	if f.Priority != nil {
		record.Priority = f.Priority.Name
	}
	if f.Assignee != nil {
		record.Assignee = f.Assignee.DisplayName
	}
	if f.Reporter != nil {
		record.Reporter = f.Reporter.DisplayName
	}
	return record
}

func closeBody(resp *jira.Response) {
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
}
