package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// tabZoneID and closeZoneID name the mouse zones of the entry at position
// pos (display order, disabled tabs included) of group g.
func tabZoneID(g, pos int) string {
	return fmt.Sprintf("tab:%d:%d", g, pos)
}

func closeZoneID(g, pos int) string {
	return fmt.Sprintf("close:%d:%d", g, pos)
}

// TabBar renders the tab list of one group.
type TabBar struct {
	zones *zone.Manager

	activeStyle   lipgloss.Style
	inactiveStyle lipgloss.Style
	cursorStyle   lipgloss.Style
	disabledStyle lipgloss.Style
	closeStyle    lipgloss.Style
	barStyle      lipgloss.Style
	columnStyle   lipgloss.Style
}

// NewTabBar creates a TabBar marking its tabs in zones. A nil manager
// renders without mouse zones.
func NewTabBar(zones *zone.Manager) TabBar {
	return TabBar{
		zones: zones,

		activeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 2),

		inactiveStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2),

		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Underline(true).
			Padding(0, 2),

		disabledStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Strikethrough(true).
			Padding(0, 2),

		closeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		barStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("238")),

		columnStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("238")).
			MarginRight(1),
	}
}

// View renders the tabs of g, the group at position gi, in list order.
func (t TabBar) View(gi int, g *tabs.Group) string {
	var rendered []string
	for pos, e := range g.Entries() {
		rendered = append(rendered, t.entry(gi, pos, e))
	}
	if len(rendered) == 0 {
		return ""
	}

	if g.Orientation() == tabs.Vertical {
		return t.columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
	}
	return t.barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (t TabBar) entry(gi, pos int, e tabs.Entry) string {
	style := t.inactiveStyle
	switch {
	case e.Disabled:
		style = t.disabledStyle
	case e.Selected:
		style = t.activeStyle
	case e.Active:
		style = t.cursorStyle
	}
	if e.Focused {
		style = style.Reverse(true)
	}

	label := t.mark(tabZoneID(gi, pos), style.Render(e.Label))
	if !e.Closeable {
		return label
	}

	closeStyle := t.closeStyle
	if e.Disabled {
		closeStyle = closeStyle.Faint(true)
	}
	if e.CloseFocused {
		closeStyle = closeStyle.Reverse(true)
	}
	return label + t.mark(closeZoneID(gi, pos), closeStyle.Render("×"))
}

func (t TabBar) mark(id, s string) string {
	if t.zones == nil {
		return s
	}
	return t.zones.Mark(id, s)
}
