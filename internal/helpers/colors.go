package helpers

import (
	"io"

	"github.com/fatih/color"
)

var (
	// Out receives success and info messages
	Out io.Writer = color.Output

	// ErrOut receives warnings and errors
	ErrOut io.Writer = color.Error
)

var (
	// SuccessColor for successful operations
	SuccessColor = color.New(color.FgGreen, color.Bold)

	// ErrorColor for error messages
	ErrorColor = color.New(color.FgRed, color.Bold)

	// WarningColor for warning messages
	WarningColor = color.New(color.FgYellow, color.Bold)

	// InfoColor for informational messages
	InfoColor = color.New(color.FgCyan)
)

// SetOutput redirects all helper output, mainly for tests
func SetOutput(out, errOut io.Writer) {
	Out = out
	ErrOut = errOut
}

// DisableColor turns off ANSI sequences for every color in the process
func DisableColor() {
	color.NoColor = true
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	SuccessColor.Fprintf(Out, "✅ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	ErrorColor.Fprintf(ErrOut, "❌ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	WarningColor.Fprintf(ErrOut, "⚠️  Warning: "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	InfoColor.Fprintf(Out, "ℹ️  "+format+"\n", args...)
}
