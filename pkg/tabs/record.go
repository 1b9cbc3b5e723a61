package tabs

// Role identifies which part of a group an element plays.
type Role int

const (
	RoleNone Role = iota
	RoleTab
	RoleClose
	RolePanel
)

func (r Role) String() string {
	switch r {
	case RoleTab:
		return "tab"
	case RoleClose:
		return "close"
	case RolePanel:
		return "panel"
	default:
		return "none"
	}
}

// Target describes an element owned by a group.
type Target struct {
	Role Role
	// Index is the navigable index of the owning tab, or -1 for disabled
	// tabs and elements the group does not own.
	Index int
	// Disabled reports whether the owning tab is disabled.
	Disabled bool
}

// TabRecord is the public description of one tab/panel pair.
type TabRecord struct {
	// ID is the panel id, and the fragment that selects the tab.
	ID string
	// TabID is the id of the generated tab control.
	TabID       string
	Label       string
	CustomClass string
	Disabled    bool
	Closeable   bool
}

// Entry is a TabRecord in display order, with its current state.
type Entry struct {
	TabRecord
	// Index is the navigable index, or -1 for disabled tabs.
	Index    int
	Selected bool
	Active   bool
	Focused  bool
	// CloseFocused reports that the close control holds focus.
	CloseFocused bool
}

type record struct {
	TabRecord

	panel   Node
	wrapper Node
	tab     Node
	close   Node
	// heading is the heading removed to label the tab, if any.
	heading Node

	generatedID bool
}
