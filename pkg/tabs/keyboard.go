package tabs

// Key is a physical key the group reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyEnter
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
)

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeyTab:    "tab",
	KeyEnter:  "enter",
	KeySpace:  "space",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyHome:   "home",
	KeyEnd:    "end",
	KeyDelete: "delete",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// HandleKey reacts to a key pressed while target, a tab or close control of
// this group, has focus. It reports whether the host should suppress the
// key's default action.
func (g *Group) HandleKey(key Key, target Target) bool {
	if g.disposed || len(g.tabs) == 0 {
		return false
	}
	if target.Role != RoleTab && target.Role != RoleClose {
		return false
	}
	if target.Disabled {
		return false
	}

	switch key {
	case KeyTab:
		// Leaving the list makes the selected panel the next stop.
		g.reachable = g.tabs[g.selected]
		g.active = g.selected
		g.project()
		return false

	case KeyEnter, KeySpace:
		if target.Role != RoleTab {
			return false
		}
		if target.Index >= 0 && target.Index < len(g.tabs) {
			g.active = target.Index
		}
		g.commit()
		g.writeHash()
		return true

	case KeyLeft, KeyUp:
		if !g.onAxis(key) {
			return false
		}
		g.MoveBack()
		return true

	case KeyRight, KeyDown:
		if !g.onAxis(key) {
			return false
		}
		g.MoveNext()
		return true

	case KeyHome:
		g.MoveFirst()
		return true

	case KeyEnd:
		g.MoveLast()
		return true

	case KeyDelete:
		g.RemoveTab(g.active)
		g.focusActive()
		return true
	}
	return false
}

func (g *Group) onAxis(key Key) bool {
	if g.orientation == Vertical {
		return key == KeyUp || key == KeyDown
	}
	return key == KeyLeft || key == KeyRight
}

// HandlePanelKey reacts to a key pressed inside the selected panel. Tab
// takes the panel back out of the tab order.
func (g *Group) HandlePanelKey(key Key) {
	if g.disposed || key != KeyTab || g.reachable == nil {
		return
	}
	g.reachable = nil
	g.project()
}

// MoveNext advances the active position by one, wrapping to the first tab,
// and focuses it. Outside manual mode the move is also committed.
func (g *Group) MoveNext() (int, bool) {
	return g.step(1)
}

// MoveBack is the inverse of MoveNext.
func (g *Group) MoveBack() (int, bool) {
	return g.step(-1)
}

// MoveFirst jumps to the first tab.
func (g *Group) MoveFirst() (int, bool) {
	return g.jump(0)
}

// MoveLast jumps to the last tab.
func (g *Group) MoveLast() (int, bool) {
	return g.jump(len(g.tabs) - 1)
}

func (g *Group) step(delta int) (int, bool) {
	n := len(g.tabs)
	if g.disposed || n == 0 {
		return -1, false
	}
	from := g.active
	if from < 0 {
		from = 0
	}
	return g.jump((from + delta + n) % n)
}

func (g *Group) jump(index int) (int, bool) {
	if g.disposed || index < 0 || index >= len(g.tabs) {
		return -1, false
	}
	g.active = index
	g.focusActive()
	if !g.manual {
		g.commit()
		g.writeHash()
	}
	return g.active, true
}
