package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nfielder/habitd/internal/digest"
	"github.com/nfielder/habitd/internal/engine"
	"github.com/nfielder/habitd/internal/notifier"
	"github.com/nfielder/habitd/internal/reminder"
	"github.com/nfielder/habitd/internal/storage"
)

// Context carries the composed application root. It is constructed once at
// process start and passed to every command; there is no ambient global
// state.
type Context struct {
	Store     storage.Provider
	Engine    *engine.Engine
	Reminders *reminder.Scheduler
	Digest    *digest.Scheduler
	Notifier  *notifier.Notifier
}

// Display styles for habit palette colors.
var colorStyles = map[string]lipgloss.Style{
	"dark-blue":   lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	"light-blue":  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"dark-green":  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	"light-green": lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	"red":         lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	"orange":      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"purple":      lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	"yellow":      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

// Colorize renders text in the habit's palette color, falling back to plain
// text for unknown colors.
func Colorize(color, text string) string {
	if style, ok := colorStyles[color]; ok {
		return style.Render(text)
	}
	return text
}
