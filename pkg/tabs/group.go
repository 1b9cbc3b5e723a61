// Package tabs implements an accessible tab group: an ordered set of
// tab/panel pairs with one active position and one committed selection,
// projected onto a Document as ARIA tabs markup.
//
// The Group model is the only state. Every public operation finishes by
// recomputing the attributes of every element the group owns, so the
// document never needs to be read back.
package tabs

import (
	"fmt"
	"strings"
)

// GroupOption customizes a Group at construction.
type GroupOption func(*Group)

// WithLogger routes trace output to l.
func WithLogger(l Logger) GroupOption {
	return func(g *Group) {
		if l != nil {
			g.log = l
		}
	}
}

// AddTabOptions are the optional arguments of AddTab.
type AddTabOptions struct {
	// Label overrides every other label source.
	Label string
	// CustomClass overrides the panel's custom class attribute.
	CustomClass string
	// Prepend inserts the tab first instead of last.
	Prepend bool
	// AutoActivate commits the new tab as the selection.
	AutoActivate bool
}

type focusState struct {
	role Role
	rec  *record
}

// Group is a tab group bound to one root element.
type Group struct {
	doc   Document
	loc   Location
	newID func(string) string
	opts  Options
	log   Logger

	root        Node
	id          string
	generatedID bool
	orientation Orientation
	manual      bool
	closeable   bool

	container   Node
	list        Node
	listWrapper Node
	// reused describes an author-provided tab list, put back on Dispose.
	reused *reusedList

	// display holds every record in list order, disabled ones included.
	display []*record
	// tabs holds the navigable records.
	tabs []*record

	active   int
	selected int

	reachable *record
	focus     focusState

	seq           int
	defaultChosen bool
	hashMatched   bool
	scaffolded    bool
	live          bool
	disposed      bool
}

// New builds a group on root. Panels are the children of root (or of its
// panel wrapper) carrying the panel attribute. With no panels the root is
// left untouched until the first AddTab.
func New(root Node, host Host, opts Options, options ...GroupOption) *Group {
	g := &Group{
		doc:      host.Doc,
		loc:      host.Location,
		newID:    host.NewID,
		opts:     opts.Normalize(),
		log:      nopLogger{},
		root:     root,
		active:   -1,
		selected: -1,
	}
	if g.newID == nil {
		g.newID = NewID
	}
	for _, o := range options {
		o(g)
	}

	g.orientation = g.opts.DefaultOrientation
	if v, ok := g.doc.Attr(root, g.opts.OrientationAttribute); ok {
		if o, ok := ParseOrientation(v); ok {
			g.orientation = o
		}
	}
	g.manual = g.opts.Manual || g.hasAttr(root, g.opts.ManualAttribute)
	g.closeable = g.opts.Closeable || g.hasAttr(root, g.opts.CloseableAttribute)

	g.container = root
	if w := g.doc.Query(root, g.opts.PanelWrapperAttribute); w != nil {
		g.container = w
	}

	var panels []Node
	for _, c := range g.doc.Children(g.container) {
		if g.hasAttr(c, g.opts.PanelAttribute) {
			panels = append(panels, c)
		}
	}

	if len(panels) > 0 {
		g.scaffold()
		for _, p := range panels {
			g.AddTab(p, AddTabOptions{})
		}
		g.removeTOC()
	}

	g.live = true
	if g.active >= 0 {
		g.selected = g.active
	}
	g.project()
	g.log.Log("[tabs] init group=%s tabs=%d active=%d orientation=%s manual=%t closeable=%t",
		g.id, len(g.tabs), g.active, g.orientation, g.manual, g.closeable)
	return g
}

func (g *Group) hasAttr(n Node, name string) bool {
	_, ok := g.doc.Attr(n, name)
	return ok
}

// scaffold creates the tab list. It runs once, on the first panel.
func (g *Group) scaffold() {
	if g.scaffolded {
		return
	}
	g.scaffolded = true

	if id, ok := g.doc.Attr(g.root, "id"); ok && id != "" {
		g.id = id
	} else {
		g.id = g.newID(g.opts.BaseID)
		g.generatedID = true
		g.doc.SetAttr(g.root, "id", g.id)
	}
	g.doc.AddClass(g.root, g.opts.GroupClass)

	list := g.doc.Query(g.root, g.opts.TabListAttribute)
	if list == nil {
		list = g.doc.CreateElement("div")
	} else {
		id, hasID := g.doc.Attr(list, "id")
		g.reused = &reusedList{parent: g.parentOf(g.root, list), id: id, hasID: hasID}
		g.doc.SetText(list, "")
	}
	g.doc.SetAttr(list, "role", "tablist")
	g.doc.AddClass(list, g.opts.TabListClass)
	g.doc.SetAttr(list, "id", g.id+"_list")
	if g.orientation == Vertical {
		g.doc.SetAttr(list, "aria-orientation", string(Vertical))
	}

	wrapper := g.doc.CreateElement("div")
	g.doc.AddClass(wrapper, g.opts.TabListWrapperClass)
	g.doc.PrependChild(g.root, wrapper)
	g.doc.AppendChild(wrapper, list)

	g.list = list
	g.listWrapper = wrapper
}

type reusedList struct {
	parent Node
	id     string
	hasID  bool
}

// parentOf finds the parent of n below ancestor.
func (g *Group) parentOf(ancestor, n Node) Node {
	for _, c := range g.doc.Children(ancestor) {
		if c == n {
			return ancestor
		}
		if g.doc.Contains(c, n) {
			return g.parentOf(c, n)
		}
	}
	return nil
}

// restoreList returns a reused tab list, emptied and without the generated
// attributes, to the top of its original parent.
func (g *Group) restoreList() {
	r := g.reused
	g.doc.SetText(g.list, "")
	g.doc.RemoveAttr(g.list, "role")
	g.doc.RemoveAttr(g.list, "aria-orientation")
	g.doc.RemoveClass(g.list, g.opts.TabListClass)
	if r.hasID {
		g.doc.SetAttr(g.list, "id", r.id)
	} else {
		g.doc.RemoveAttr(g.list, "id")
	}
	if r.parent != nil {
		g.doc.PrependChild(r.parent, g.list)
	}
}

func (g *Group) removeTOC() {
	id, ok := g.doc.Attr(g.root, g.opts.TOCAttribute)
	if !ok || id == "" {
		return
	}
	if toc := g.doc.ElementByID(id); toc != nil {
		g.doc.Remove(toc)
	}
}

// AddTab builds a tab for panel and returns its navigable index. Disabled
// panels get a tab in the list but are not navigable, so the result is
// (-1, false) for them, as it is for a nil panel.
func (g *Group) AddTab(panel Node, o AddTabOptions) (int, bool) {
	if g.disposed || panel == nil {
		return -1, false
	}
	g.scaffold()

	rec := g.buildRecord(panel, o)
	if !g.doc.Contains(g.root, panel) {
		g.doc.AppendChild(g.container, panel)
	}
	if o.Prepend {
		g.doc.PrependChild(g.list, rec.wrapper)
		g.display = append([]*record{rec}, g.display...)
	} else {
		g.doc.AppendChild(g.list, rec.wrapper)
		g.display = append(g.display, rec)
	}

	if rec.Disabled {
		g.log.Log("[tabs] add group=%s id=%s disabled", g.id, rec.ID)
		if g.live {
			g.project()
		}
		return -1, false
	}

	index := len(g.tabs)
	if o.Prepend {
		index = 0
		g.tabs = append([]*record{rec}, g.tabs...)
		if g.active >= 0 {
			g.active++
		}
		if g.selected >= 0 {
			g.selected++
		}
	} else {
		g.tabs = append(g.tabs, rec)
	}

	switch {
	case g.matchesHash(rec):
		// A fragment match wins over any declared default.
		g.active = index
		g.hashMatched = true
		if g.live {
			g.selected = index
		}
	case !g.live && !g.hashMatched && !g.defaultChosen && g.isDeclaredDefault(panel):
		g.active = index
		g.defaultChosen = true
	}

	if g.active < 0 {
		g.active = index
	}
	if g.live && g.selected < 0 {
		g.selected = g.active
	}

	if o.AutoActivate {
		g.active = index
		g.selected = index
	}

	g.log.Log("[tabs] add group=%s id=%s index=%d active=%d", g.id, rec.ID, index, g.active)
	if g.live {
		g.project()
	}
	return index, true
}

func (g *Group) matchesHash(rec *record) bool {
	if g.loc == nil {
		return false
	}
	h := strings.TrimPrefix(g.loc.Hash(), "#")
	return h != "" && h == rec.ID
}

func (g *Group) isDeclaredDefault(panel Node) bool {
	v, _ := g.doc.Attr(panel, g.opts.PanelAttribute)
	return v == g.opts.DefaultPanelValue
}

func (g *Group) buildRecord(panel Node, o AddTabOptions) *record {
	g.seq++
	rec := &record{panel: panel}

	rec.Disabled = g.hasAttr(panel, g.opts.DisabledAttribute)
	rec.Closeable = g.closeable
	rec.Label, rec.heading = g.resolveLabel(panel, o.Label)
	rec.CustomClass = o.CustomClass
	if rec.CustomClass == "" {
		rec.CustomClass, _ = g.doc.Attr(panel, g.opts.CustomTabClassAttribute)
	}

	if id, ok := g.doc.Attr(panel, "id"); ok && id != "" {
		rec.ID = id
	} else {
		rec.ID = fmt.Sprintf("%s_panel_%d", g.id, g.seq)
		rec.generatedID = true
		g.doc.SetAttr(panel, "id", rec.ID)
	}
	rec.TabID = fmt.Sprintf("%s_tab_%d", g.id, g.seq)

	wrapper := g.doc.CreateElement("div")
	g.doc.AddClass(wrapper, g.opts.TabWrapperClass)
	g.doc.SetAttr(wrapper, "role", "presentation")

	tab := g.doc.CreateElement("span")
	g.doc.SetAttr(tab, "id", rec.TabID)
	g.doc.SetAttr(tab, "role", "tab")
	g.doc.SetAttr(tab, "data-controls", rec.ID)
	g.doc.AddClass(tab, g.opts.TabClass)
	if rec.CustomClass != "" {
		g.doc.AddClass(tab, rec.CustomClass)
	}
	if rec.Disabled {
		g.doc.SetAttr(tab, "aria-disabled", "true")
	}
	g.doc.SetText(tab, rec.Label)
	g.doc.AppendChild(wrapper, tab)

	if rec.Closeable {
		btn := g.doc.CreateElement("button")
		g.doc.SetAttr(btn, "type", "button")
		g.doc.AddClass(btn, g.opts.CloseClass)
		g.doc.SetAttr(btn, "aria-label", g.opts.CloseLabel)
		g.doc.SetAttr(btn, "aria-describedby", rec.TabID)
		g.doc.SetText(btn, "×")
		if rec.Disabled {
			g.doc.SetAttr(btn, "disabled", "true")
		}
		g.doc.AppendChild(wrapper, btn)
		rec.close = btn
	}

	g.doc.SetAttr(panel, "role", "tabpanel")
	g.doc.SetAttr(panel, "aria-labelledby", rec.TabID)
	g.doc.AddClass(panel, g.opts.PanelClass)
	g.doc.SetAttr(panel, "hidden", "")

	rec.wrapper = wrapper
	rec.tab = tab
	return rec
}

// resolveLabel picks the first non-empty of: the explicit label, the label
// attribute, the heading text and "Tab N". The heading is removed from the
// panel unless it asks to be kept; a removed heading is returned.
func (g *Group) resolveLabel(panel Node, explicit string) (string, Node) {
	heading := ""
	var removed Node
	if h := g.doc.Query(panel, g.opts.HeadingAttribute); h != nil {
		heading = strings.Join(strings.Fields(g.doc.TextContent(h)), " ")
		if v, _ := g.doc.Attr(h, g.opts.HeadingAttribute); v != g.opts.HeadingKeepValue {
			g.doc.Remove(h)
			removed = h
		}
	}

	attr, _ := g.doc.Attr(panel, g.opts.TabLabelAttribute)
	for _, l := range []string{explicit, strings.TrimSpace(attr), heading} {
		if l != "" {
			return l, removed
		}
	}
	return fmt.Sprintf("%s%d", g.opts.DefaultTabLabel, len(g.tabs)+1), removed
}

// RemoveTab detaches the tab at index together with its panel. The same
// record stays active when it survives; otherwise the active index falls
// back by one without wrapping. The resulting tab is focused, committed
// and written to the fragment.
func (g *Group) RemoveTab(index int) bool {
	if g.disposed || index < 0 || index >= len(g.tabs) {
		return false
	}
	rec := g.tabs[index]

	g.doc.Remove(rec.panel)
	g.doc.Remove(rec.wrapper)
	g.tabs = append(g.tabs[:index], g.tabs[index+1:]...)
	for i, r := range g.display {
		if r == rec {
			g.display = append(g.display[:i], g.display[i+1:]...)
			break
		}
	}
	if g.reachable == rec {
		g.reachable = nil
	}
	if g.focus.rec == rec {
		g.focus = focusState{}
	}

	g.log.Log("[tabs] remove group=%s id=%s index=%d remaining=%d", g.id, rec.ID, index, len(g.tabs))

	if len(g.tabs) == 0 {
		g.active = -1
		g.selected = -1
		g.project()
		return true
	}

	if index < g.active {
		g.active--
	}
	if g.active >= len(g.tabs) {
		g.active = len(g.tabs) - 1
	}
	g.focusActive()
	g.commit()
	g.writeHash()
	return true
}

// Dispose removes the generated tab list, strips the scaffolding from the
// root and the panels and reveals every panel. Headings taken as labels go
// back to the top of their panels, and an author-provided tab list returns,
// emptied, to the top of its parent. Every later call on the group is a
// no-op.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true

	if g.listWrapper != nil {
		g.doc.Remove(g.listWrapper)
	}
	if g.reused != nil {
		g.restoreList()
	}
	for _, r := range g.display {
		if r.heading != nil {
			g.doc.PrependChild(r.panel, r.heading)
		}
		for _, a := range []string{"role", "aria-labelledby", "hidden", "tabindex"} {
			g.doc.RemoveAttr(r.panel, a)
		}
		g.doc.RemoveClass(r.panel, g.opts.PanelClass)
		if r.generatedID {
			g.doc.RemoveAttr(r.panel, "id")
		}
	}
	if g.scaffolded {
		g.doc.RemoveClass(g.root, g.opts.GroupClass)
		if g.generatedID {
			g.doc.RemoveAttr(g.root, "id")
		}
	}

	g.log.Log("[tabs] dispose group=%s tabs=%d", g.id, len(g.display))
	g.display = nil
	g.tabs = nil
	g.active = -1
	g.selected = -1
	g.reachable = nil
	g.focus = focusState{}
}

// ID returns the group id, empty until the group has a tab.
func (g *Group) ID() string { return g.id }

// Root returns the element the group was built on.
func (g *Group) Root() Node { return g.root }

// TabList returns the tablist element, or nil before the first tab.
func (g *Group) TabList() Node { return g.list }

func (g *Group) Orientation() Orientation { return g.orientation }
func (g *Group) Manual() bool             { return g.manual }
func (g *Group) Closeable() bool          { return g.closeable }
func (g *Group) Disposed() bool           { return g.disposed }

// Len returns the number of navigable tabs.
func (g *Group) Len() int { return len(g.tabs) }

// ActiveIndex returns the focus position, false for an empty group.
func (g *Group) ActiveIndex() (int, bool) {
	return g.active, g.active >= 0
}

// SelectedIndex returns the committed tab whose panel is visible.
func (g *Group) SelectedIndex() (int, bool) {
	return g.selected, g.selected >= 0
}

// Tabs returns the navigable tabs in order.
func (g *Group) Tabs() []TabRecord {
	out := make([]TabRecord, len(g.tabs))
	for i, r := range g.tabs {
		out[i] = r.TabRecord
	}
	return out
}

// Entries returns every tab in list order, disabled ones included.
func (g *Group) Entries() []Entry {
	out := make([]Entry, 0, len(g.display))
	for _, r := range g.display {
		i := g.indexOf(r)
		out = append(out, Entry{
			TabRecord:    r.TabRecord,
			Index:        i,
			Selected:     i >= 0 && i == g.selected,
			Active:       i >= 0 && i == g.active,
			Focused:      g.focus.rec == r && g.focus.role == RoleTab,
			CloseFocused: g.focus.rec == r && g.focus.role == RoleClose,
		})
	}
	return out
}

// Panel returns the panel of the navigable tab at index.
func (g *Group) Panel(index int) Node {
	if index < 0 || index >= len(g.tabs) {
		return nil
	}
	return g.tabs[index].panel
}

// SelectedPanel returns the visible panel, or nil.
func (g *Group) SelectedPanel() Node {
	return g.Panel(g.selected)
}

// TargetOf classifies n. Elements inside a panel count as the panel.
func (g *Group) TargetOf(n Node) Target {
	if n == nil {
		return Target{Index: -1}
	}
	for _, r := range g.display {
		t := Target{Index: g.indexOf(r), Disabled: r.Disabled}
		switch {
		case n == r.tab:
			t.Role = RoleTab
		case r.close != nil && n == r.close:
			t.Role = RoleClose
		case n == r.panel || g.doc.Contains(r.panel, n):
			t.Role = RolePanel
		default:
			continue
		}
		return t
	}
	return Target{Index: -1}
}

// Focus reports which element of the group holds focus.
func (g *Group) Focus() Target {
	if g.focus.rec == nil {
		return Target{Index: -1}
	}
	return Target{Role: g.focus.role, Index: g.indexOf(g.focus.rec), Disabled: g.focus.rec.Disabled}
}

// PanelReachable reports whether the selected panel is in the tab order.
func (g *Group) PanelReachable() bool {
	return g.reachable != nil
}

func (g *Group) indexOf(r *record) int {
	for i, t := range g.tabs {
		if t == r {
			return i
		}
	}
	return -1
}
