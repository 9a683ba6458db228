// Package ui renders CLI output: styled status lines and plain tables.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")

	// Styles
	headerStyle = lipgloss.NewStyle().Bold(true)

	activeStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// colorEnabled reports whether stdout is a terminal worth styling.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Status styles a droplet status string for terminal output.
func Status(s string) string {
	if !colorEnabled() {
		return s
	}
	switch s {
	case "active":
		return activeStyle.Render(s)
	case "new":
		return warnStyle.Render(s)
	case "off", "archive":
		return dimStyle.Render(s)
	default:
		return s
	}
}

// Error styles an error message.
func Error(s string) string {
	if !colorEnabled() {
		return s
	}
	return errorStyle.Render(s)
}

// Header styles a table header cell.
func Header(s string) string {
	if !colorEnabled() {
		return s
	}
	return headerStyle.Render(s)
}
