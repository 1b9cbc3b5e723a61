package tabs

import "strings"

// Activate commits the tab at index: it becomes the only selected tab and
// its panel the only visible one. Out of range indices, including those of
// disabled tabs, which are never navigable, return (-1, false).
func (g *Group) Activate(index int) (int, bool) {
	if g.disposed || index < 0 || index >= len(g.tabs) {
		return -1, false
	}
	g.active = index
	g.commit()
	return g.selected, true
}

// HashChanged activates the tab whose id equals hash. Unknown fragments
// leave the group unchanged.
func (g *Group) HashChanged(hash string) bool {
	if g.disposed {
		return false
	}
	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		return false
	}
	for i, r := range g.tabs {
		if r.ID == hash {
			g.active = i
			g.commit()
			return true
		}
	}
	return false
}

// commit makes the active position the selection and reprojects.
func (g *Group) commit() {
	if g.active < 0 {
		return
	}
	g.selected = g.active
	if g.reachable != nil && g.reachable != g.tabs[g.selected] {
		g.reachable = nil
	}
	g.log.Log("[tabs] activate group=%s index=%d id=%s", g.id, g.selected, g.tabs[g.selected].ID)
	g.project()
}

// focusActive moves focus to the tab at the active position.
func (g *Group) focusActive() {
	if g.active < 0 || g.active >= len(g.tabs) {
		return
	}
	rec := g.tabs[g.active]
	g.focus = focusState{role: RoleTab, rec: rec}
	g.doc.Focus(rec.tab)
	g.project()
}

// writeHash publishes the active tab's id, replacing the current history
// entry when the location supports it.
func (g *Group) writeHash() {
	if g.loc == nil || g.active < 0 || g.active >= len(g.tabs) {
		return
	}
	id := g.tabs[g.active].ID
	if r, ok := g.loc.(HashReplacer); ok {
		r.ReplaceHash(id)
		return
	}
	g.loc.AssignHash(id)
}

// project writes the model onto every element the group owns.
func (g *Group) project() {
	if g.disposed || !g.scaffolded {
		return
	}
	var selected *record
	if g.selected >= 0 && g.selected < len(g.tabs) {
		selected = g.tabs[g.selected]
	}

	for _, r := range g.display {
		isSelected := r == selected

		g.setClass(r.wrapper, g.opts.SelectedClass, isSelected)
		g.setClass(r.wrapper, g.opts.FocusedClass, g.focus.rec == r && g.focus.role == RoleTab)

		if isSelected {
			g.doc.SetAttr(r.tab, "tabindex", "0")
			g.doc.SetAttr(r.tab, "aria-selected", "true")
			g.doc.SetAttr(r.tab, "aria-controls", r.ID)
		} else {
			g.doc.SetAttr(r.tab, "tabindex", "-1")
			g.doc.SetAttr(r.tab, "aria-selected", "false")
			g.doc.RemoveAttr(r.tab, "aria-controls")
		}

		if r.close != nil {
			if isSelected {
				g.doc.SetAttr(r.close, "tabindex", "0")
			} else {
				g.doc.SetAttr(r.close, "tabindex", "-1")
			}
		}

		if isSelected && !g.hasAttr(r.panel, g.opts.DisabledAttribute) {
			g.doc.RemoveAttr(r.panel, "hidden")
		} else {
			g.doc.SetAttr(r.panel, "hidden", "")
		}

		if r == g.reachable {
			g.doc.SetAttr(r.panel, "tabindex", "0")
		} else {
			g.doc.RemoveAttr(r.panel, "tabindex")
		}
	}
}

func (g *Group) setClass(n Node, class string, on bool) {
	if on {
		g.doc.AddClass(n, class)
	} else {
		g.doc.RemoveClass(n, class)
	}
}
