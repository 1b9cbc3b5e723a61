package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the document title and the current fragment.
type Header struct {
	title    string
	fragment string
	groups   int
	width    int

	titleStyle    lipgloss.Style
	fragmentStyle lipgloss.Style
	barStyle      lipgloss.Style
}

// NewHeader creates a new Header.
func NewHeader() *Header {
	return &Header{
		width: 80,

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true),

		fragmentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true),

		barStyle: lipgloss.NewStyle().
			PaddingLeft(1).
			MarginBottom(1),
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetDocument sets the title and the number of tab groups shown.
func (h *Header) SetDocument(title string, groups int) {
	h.title = title
	h.groups = groups
}

// SetFragment sets the fragment shown next to the title.
func (h *Header) SetFragment(fragment string) {
	h.fragment = fragment
}

// View renders the header.
func (h *Header) View() string {
	title := h.title
	if title == "" {
		title = "untitled"
	}

	info := fmt.Sprintf("%d group", h.groups)
	if h.groups != 1 {
		info += "s"
	}
	if h.fragment != "" {
		info += "  #" + h.fragment
	}

	line := h.titleStyle.Render(title) + "  " + h.fragmentStyle.Render(info)
	return h.barStyle.Width(h.width).Render(line)
}

// Height returns the header height in lines.
func (h *Header) Height() int {
	return 2 // title line + margin
}
