package tabs

// Click reacts to a pointer activation of target. A tab is committed,
// focused and written to the fragment; a close control removes its tab.
func (g *Group) Click(target Target) bool {
	if g.disposed || target.Disabled || target.Index < 0 || target.Index >= len(g.tabs) {
		return false
	}
	switch target.Role {
	case RoleTab:
		g.active = target.Index
		g.commit()
		g.focusActive()
		g.writeHash()
		return true
	case RoleClose:
		return g.RemoveTab(target.Index)
	}
	return false
}

// FocusChanged tells the group that focus moved from previous to n. Focus
// on a disabled tab is refused: n is blurred and previous refocused when it
// can still take focus. It returns false when the move was refused.
func (g *Group) FocusChanged(n, previous Node) bool {
	if g.disposed {
		return true
	}
	t := g.TargetOf(n)

	if t.Role == RoleTab && t.Disabled {
		g.doc.Blur(n)
		if previous != nil && g.doc.CanFocus(previous) {
			g.doc.Focus(previous)
			g.setFocus(g.TargetOf(previous), previous)
		} else {
			g.focus = focusState{}
		}
		g.log.Log("[tabs] refused focus on disabled tab group=%s", g.id)
		g.project()
		return false
	}

	if g.reachable != nil && t.Role != RolePanel {
		prev := g.TargetOf(previous)
		if prev.Role == RolePanel {
			g.reachable = nil
		}
	}
	g.setFocus(t, n)
	g.project()
	return true
}

func (g *Group) setFocus(t Target, n Node) {
	switch t.Role {
	case RoleTab, RoleClose:
		rec := g.recordOf(n, t.Role)
		g.focus = focusState{role: t.Role, rec: rec}
		if t.Index >= 0 {
			g.active = t.Index
		}
	case RolePanel:
		g.focus = focusState{role: RolePanel, rec: g.recordOf(n, RolePanel)}
	default:
		g.focus = focusState{}
	}
}

func (g *Group) recordOf(n Node, role Role) *record {
	for _, r := range g.display {
		switch role {
		case RoleTab:
			if r.tab == n {
				return r
			}
		case RoleClose:
			if r.close != nil && r.close == n {
				return r
			}
		case RolePanel:
			if r.panel == n || g.doc.Contains(r.panel, n) {
				return r
			}
		}
	}
	return nil
}
