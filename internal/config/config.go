package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned when required settings are missing or malformed
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Jira         JiraConfig     `yaml:"jira"`
	CustomFields CustomFieldIDs `yaml:"custom_fields"`
	LogLevel     string         `yaml:"log_level"`
}

// JiraConfig represents JIRA API configuration
type JiraConfig struct {
	BaseURL    string `yaml:"base_url"`
	Username   string `yaml:"username"`
	APIToken   string `yaml:"api_token"`
	ProjectKey string `yaml:"project_key"`
	BoardID    int    `yaml:"board_id"`
	LinkType   string `yaml:"link_type"`
	MaxResults int    `yaml:"max_results"`
	Timeout    int    `yaml:"timeout_seconds"`
}

// CustomFieldIDs holds the opaque identifiers of the custom fields the
// issue mapper writes to.
type CustomFieldIDs struct {
	EpicName           string `yaml:"epic_name"`
	EpicLink           string `yaml:"epic_link"`
	AcceptanceCriteria string `yaml:"acceptance_criteria"`
	Estimate           string `yaml:"estimate"`
	StoryPoints        string `yaml:"story_points"`
	Sprint             string `yaml:"sprint"`
}

// Environment variables read by Load. They take precedence over the file.
const (
	EnvURL      = "JIRA_URL"
	EnvUser     = "JIRA_USER"
	EnvToken    = "JIRA_API_TOKEN"
	EnvProject  = "JIRA_PROJECT"
	EnvBoardID  = "JIRA_BOARD_ID"
	EnvLogLevel = "JIRA_LOG_LEVEL"
)

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Jira: JiraConfig{
			LinkType:   "Relates",
			MaxResults: 50,
			Timeout:    30,
		},
		CustomFields: CustomFieldIDs{
			EpicName:           "customfield_10011",
			EpicLink:           "customfield_10014",
			AcceptanceCriteria: "customfield_10200",
			Estimate:           "customfield_10201",
			StoryPoints:        "customfield_10016",
			Sprint:             "customfield_10020",
		},
		LogLevel: "warn",
	}
}

// DefaultPath returns the config file looked up when --config is not given
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jira-cli", "config.yaml")
}

// Load builds the configuration from defaults, the YAML file at configPath,
// a .env file in the working directory and the process environment, in that
// order of increasing precedence. When explicit is false a missing file is
// not an error.
func Load(configPath string, explicit bool) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: failed to parse config file: %v", ErrInvalidConfig, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrInvalidConfig, err)
		}
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to load .env: %v", ErrInvalidConfig, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		EnvURL:      &c.Jira.BaseURL,
		EnvUser:     &c.Jira.Username,
		EnvToken:    &c.Jira.APIToken,
		EnvProject:  &c.Jira.ProjectKey,
		EnvLogLevel: &c.LogLevel,
	}
	for env, ptr := range strs {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*ptr = v
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvBoardID)); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidConfig, EnvBoardID, v)
		}
		c.Jira.BoardID = id
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var missing []string
	if c.Jira.BaseURL == "" {
		missing = append(missing, EnvURL)
	}
	if c.Jira.Username == "" {
		missing = append(missing, EnvUser)
	}
	if c.Jira.APIToken == "" {
		missing = append(missing, EnvToken)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: please set %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	if c.Jira.Timeout <= 0 {
		return fmt.Errorf("%w: timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.Jira.MaxResults <= 0 {
		return fmt.Errorf("%w: max_results must be positive", ErrInvalidConfig)
	}

	return nil
}
