package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status message and keyboard hints.
type Footer struct {
	message  string
	success  bool
	width    int
	showHelp bool

	help help.Model
	keys keyMap

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	hintStyle    lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter(keys keyMap, showHelp bool) *Footer {
	return &Footer{
		width:    80,
		showHelp: showHelp,
		help:     help.New(),
		keys:     keys,

		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string, success bool) {
	f.message = message
	f.success = success
}

// Message returns the status message.
func (f *Footer) Message() string {
	return f.message
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.Width = width
}

// ToggleHelp switches between the short and the full key help.
func (f *Footer) ToggleHelp() {
	f.showHelp = true
	f.help.ShowAll = !f.help.ShowAll
}

// Height returns the footer height in lines.
func (f *Footer) Height() int {
	return strings.Count(f.View(), "\n") + 1
}

// View renders the footer.
func (f *Footer) View() string {
	var lines []string

	if f.message != "" {
		if f.success {
			lines = append(lines, f.successStyle.Render("✓ "+f.message))
		} else {
			lines = append(lines, f.errorStyle.Render("✗ "+f.message))
		}
	} else {
		lines = append(lines, f.hintStyle.Render("tab moves focus, ? shows all keys"))
	}

	if f.showHelp {
		lines = append(lines, f.help.View(f.keys))
	}

	return strings.Join(lines, "\n")
}
