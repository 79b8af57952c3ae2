package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	statusStyles = map[string]lipgloss.Style{
		"not_started": lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"in_progress": lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		"completed":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"expired":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}

	priorityStyles = map[string]lipgloss.Style{
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}

	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// colorEnabled reports whether styled output should be emitted.
var colorEnabled = ansiEnabled

// StatusBadge renders a task status, coloured when writing to a terminal.
func StatusBadge(status string) string {
	return render(statusStyles, status)
}

// PriorityBadge renders a task priority, coloured when writing to a terminal.
func PriorityBadge(priority string) string {
	return render(priorityStyles, priority)
}

// Label renders a field label in bold.
func Label(value string) string {
	if !colorEnabled() {
		return value
	}
	return labelStyle.Render(value)
}

// Muted renders secondary text.
func Muted(value string) string {
	if !colorEnabled() {
		return value
	}
	return mutedStyle.Render(value)
}

func render(styles map[string]lipgloss.Style, value string) string {
	if value == "" || !colorEnabled() {
		return value
	}
	style, ok := styles[value]
	if !ok {
		return value
	}
	return style.Render(value)
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
