package helpers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when a prompt cannot be answered
var ErrNoInput = errors.New("no interactive input available")

// Prompter asks the user for missing values on a line-oriented input
type Prompter struct {
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter creates a prompter. Prompts are only issued when interactive
// is true; otherwise Ask fails with ErrNoInput.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// IsTerminal reports whether r is a terminal
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether the prompter may ask questions
func (p *Prompter) Interactive() bool {
	return p != nil && p.interactive
}

// Ask prints label and reads a non-empty line, asking again on blank input
func (p *Prompter) Ask(label string) (string, error) {
	if !p.Interactive() {
		return "", fmt.Errorf("%w for %q", ErrNoInput, label)
	}

	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.reader.ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			return value, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w for %q", ErrNoInput, label)
			}
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}
	}
}
