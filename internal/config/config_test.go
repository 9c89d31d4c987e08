package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvURL, EnvUser, EnvToken, EnvProject, EnvBoardID, EnvLogLevel} {
		t.Setenv(env, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "https://example.atlassian.net")
	t.Setenv(EnvUser, "me@example.com")
	t.Setenv(EnvToken, "secret")
	t.Setenv(EnvProject, "ENG")
	t.Setenv(EnvBoardID, "42")

	cfg, err := Load("", false)
	require.NoError(t, err)

	assert.Equal(t, "https://example.atlassian.net", cfg.Jira.BaseURL)
	assert.Equal(t, "ENG", cfg.Jira.ProjectKey)
	assert.Equal(t, 42, cfg.Jira.BoardID)
	assert.Equal(t, "Relates", cfg.Jira.LinkType)
	assert.Equal(t, "customfield_10020", cfg.CustomFields.Sprint)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
jira:
  base_url: https://file.example.net
  username: file-user
  api_token: file-token
  project_key: FILE
  board_id: 7
custom_fields:
  story_points: customfield_99999
`)
	t.Setenv(EnvProject, "ENV")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.net", cfg.Jira.BaseURL)
	assert.Equal(t, "ENV", cfg.Jira.ProjectKey)
	assert.Equal(t, 7, cfg.Jira.BoardID)
	assert.Equal(t, "customfield_99999", cfg.CustomFields.StoryPoints)
	// untouched defaults survive a partial custom_fields block
	assert.Equal(t, "customfield_10011", cfg.CustomFields.EpicName)
}

func TestMissingCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "https://example.atlassian.net")

	_, err := Load("", false)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), EnvUser)
	assert.Contains(t, err.Error(), EnvToken)
}

func TestConfigFilePresence(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "https://example.atlassian.net")
	t.Setenv(EnvUser, "me")
	t.Setenv(EnvToken, "secret")

	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(missing, false)
	require.NoError(t, err)

	_, err = Load(missing, true)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInvalidBoardID(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "https://example.atlassian.net")
	t.Setenv(EnvUser, "me")
	t.Setenv(EnvToken, "secret")
	t.Setenv(EnvBoardID, "board-seven")

	_, err := Load("", false)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
