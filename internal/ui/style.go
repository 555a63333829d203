package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	styleActive    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleAbandoned = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleClear     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// RenderStatus colors a status label for terminal display. Unknown labels
// and non-terminal output pass through unchanged.
func RenderStatus(status string) string {
	if !ansiEnabled() {
		return status
	}

	switch status {
	case "ACTIVE":
		return styleActive.Render(status)
	case "COMPLETED":
		return styleCompleted.Render(status)
	case "ABANDONED":
		return styleAbandoned.Render(status)
	case "CLEAR":
		return styleClear.Render(status)
	default:
		return status
	}
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
