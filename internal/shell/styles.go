package shell

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - matches the CLI colors
var (
	colorPrimary = lipgloss.Color("#1793D1") // Arch blue
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 3)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// banner renders the boxed application title shown on startup.
func banner(version string) string {
	return bannerStyle.Render(fmt.Sprintf("Aurum %s - Arch Linux package assistant", version))
}

// header renders a section heading inside a menu screen.
func header(title string) string {
	return headerStyle.Render(title)
}

// hint renders dimmed helper text under a menu.
func hint(text string) string {
	return hintStyle.Render(text)
}
