package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskRepeatsOnBlankLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n  \nENG\n"), &out, true)

	value, err := p.Ask("Enter project key")
	require.NoError(t, err)
	assert.Equal(t, "ENG", value)
	assert.Equal(t, 3, strings.Count(out.String(), "Enter project key: "))
}

func TestAskLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("Fix bug"), &bytes.Buffer{}, true)

	value, err := p.Ask("Enter issue summary")
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", value)
}

func TestAskFailsWithoutInput(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, true)
	_, err := p.Ask("Enter issue summary")
	assert.ErrorIs(t, err, ErrNoInput)

	p = NewPrompter(strings.NewReader("ENG\n"), &bytes.Buffer{}, false)
	_, err = p.Ask("Enter project key")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestIsTerminalOnBuffers(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("")))
}

func TestPrintHelpersUseConfiguredWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	DisableColor()
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })

	PrintSuccess("Created issue: %s", "ENG-1")
	PrintWarning("Could not create link: %s", "boom")

	assert.Contains(t, out.String(), "Created issue: ENG-1")
	assert.Contains(t, errOut.String(), "Warning: Could not create link: boom")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "description.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two"), 0o600))

	got, err := ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)

	got, err = ReadFile("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]string{"summary": "Fix bug"}))
	assert.JSONEq(t, `{"summary":"Fix bug"}`, buf.String())
}
