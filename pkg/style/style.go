// Package style holds the lipgloss styles used for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimmedStyle  = lipgloss.NewStyle().Faint(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

const (
	// SuccessMark prefixes successful actions.
	SuccessMark = "✓"
	// FailureMark prefixes failed actions.
	FailureMark = "✗"
	// WarningMark flags a dirty worktree.
	WarningMark = "⚠"
)

// Success renders the success mark.
func Success() string {
	return successStyle.Render(SuccessMark)
}

// Failure renders the failure mark.
func Failure() string {
	return failureStyle.Render(FailureMark)
}

// Warning renders text as a warning.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Dimmed renders secondary text such as paths and commit ids.
func Dimmed(text string) string {
	return dimmedStyle.Render(text)
}

// Accent renders names the user should notice, such as application names.
func Accent(text string) string {
	return accentStyle.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Header renders a section header.
func Header(text string) string {
	return headerStyle.Render(text)
}

// ErrorPrefix renders the "error:" prefix printed before fatal messages.
func ErrorPrefix() string {
	return failureStyle.Render("error:")
}

// WarningPrefix renders the "warning:" prefix.
func WarningPrefix() string {
	return warningStyle.Bold(true).Render("warning:")
}
