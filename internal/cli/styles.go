// Package cli holds the terminal presentation helpers of the siglab command:
// lipgloss styles, aligned metric tables and the styled kong help printer.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	accentColor = lipgloss.Color("#2E86DE")
	warnColor   = lipgloss.Color("#E1A100")
	errorColor  = lipgloss.Color("#C0392B")
	mutedColor  = lipgloss.Color("#888888")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warnColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

// PrintTitle writes a styled section title followed by a blank line.
func PrintTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n\n", TitleStyle.Render(title))
}

// PrintKeyValue writes one "key: value" line.
func PrintKeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintWarning writes a highlighted warning line.
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", WarnStyle.Render("Warning:"), message)
}

// PrintError writes an error line.
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}
