package tabs_test

import (
	"strings"
	"testing"

	"github.com/ShayCichocki/atabs/internal/dom"
	"github.com/ShayCichocki/atabs/internal/location"
	"github.com/ShayCichocki/atabs/pkg/tabs"
)

func TestActivate_SingleSelection(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	for i := 0; i < f.g.Len(); i++ {
		got, ok := f.g.Activate(i)
		if !ok || got != i {
			t.Fatalf("Activate(%d) = %d, %t", i, got, ok)
		}
		assertProjection(t, f)
	}
}

func TestActivate_OutOfRange(t *testing.T) {
	f := newTestGroup(t, threePanels, "p2")
	for _, i := range []int{-1, 3} {
		if got, ok := f.g.Activate(i); ok || got != -1 {
			t.Errorf("Activate(%d) = %d, %t, want -1, false", i, got, ok)
		}
	}
	if got := mustActive(t, f.g); got != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", got)
	}
}

func TestMove_Cyclic(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	n := f.g.Len()

	for start := 0; start < n; start++ {
		f.g.Activate(start)
		for i := 0; i < n; i++ {
			f.g.MoveNext()
		}
		if got := mustActive(t, f.g); got != start {
			t.Errorf("MoveNext x%d from %d = %d", n, start, got)
		}

		f.g.MoveNext()
		f.g.MoveBack()
		if got := mustActive(t, f.g); got != start {
			t.Errorf("MoveNext then MoveBack from %d = %d", start, got)
		}
	}
}

func TestMove_Wraps(t *testing.T) {
	f := newTestGroup(t, threePanels, "")

	if got, _ := f.g.MoveBack(); got != 2 {
		t.Errorf("MoveBack() from 0 = %d, want 2", got)
	}
	if got, _ := f.g.MoveNext(); got != 0 {
		t.Errorf("MoveNext() from 2 = %d, want 0", got)
	}
	if f.doc.ActiveElement() != f.tab(t, 0) {
		t.Error("moving should focus the active tab")
	}
	if f.loc.Hash() != "p1" {
		t.Errorf("hash = %q, want p1", f.loc.Hash())
	}
	assertProjection(t, f)
}

func TestHandleKey_Orientation(t *testing.T) {
	tests := []struct {
		name     string
		vertical bool
		key      tabs.Key
		handled  bool
		want     int
	}{
		{"horizontal right", false, tabs.KeyRight, true, 1},
		{"horizontal left", false, tabs.KeyLeft, true, 2},
		{"horizontal down ignored", false, tabs.KeyDown, false, 0},
		{"horizontal up ignored", false, tabs.KeyUp, false, 0},
		{"vertical down", true, tabs.KeyDown, true, 1},
		{"vertical up", true, tabs.KeyUp, true, 2},
		{"vertical right ignored", true, tabs.KeyRight, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := threePanels
			if tt.vertical {
				markup = strings.Replace(markup, "data-atabs>", `data-atabs data-atabs-orientation="vertical">`, 1)
			}
			f := newTestGroup(t, markup, "")

			if got := f.g.HandleKey(tt.key, f.target(t, 0)); got != tt.handled {
				t.Errorf("HandleKey(%s) = %t, want %t", tt.key, got, tt.handled)
			}
			if got := mustActive(t, f.g); got != tt.want {
				t.Errorf("ActiveIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleKey_HomeEnd(t *testing.T) {
	f := newTestGroup(t, threePanels, "p2")

	if !f.g.HandleKey(tabs.KeyEnd, f.target(t, 1)) {
		t.Error("End should be handled")
	}
	if got := mustActive(t, f.g); got != 2 {
		t.Errorf("after End ActiveIndex() = %d, want 2", got)
	}
	if f.loc.Hash() != "p3" {
		t.Errorf("hash = %q, want p3", f.loc.Hash())
	}

	f.g.HandleKey(tabs.KeyHome, f.target(t, 2))
	if got := mustActive(t, f.g); got != 0 {
		t.Errorf("after Home ActiveIndex() = %d, want 0", got)
	}
	if f.doc.ActiveElement() != f.tab(t, 0) {
		t.Error("Home should focus the first tab")
	}
	assertProjection(t, f)
}

func TestHandleKey_Delete(t *testing.T) {
	f := newTestGroup(t, threePanels, "p3")

	if !f.g.HandleKey(tabs.KeyDelete, f.target(t, 2)) {
		t.Error("Delete should be handled")
	}
	if f.g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.g.Len())
	}
	if got := mustActive(t, f.g); got != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", got)
	}
	if f.doc.ActiveElement() != f.tab(t, 1) {
		t.Error("Delete should refocus the new active tab")
	}
}

func TestHandleKey_IgnoresForeignTargets(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	if f.g.HandleKey(tabs.KeyRight, tabs.Target{Role: tabs.RolePanel, Index: 0}) {
		t.Error("keys on a panel are not tab list keys")
	}
	if f.g.HandleKey(tabs.KeyRight, tabs.Target{Index: -1}) {
		t.Error("keys on foreign elements should be ignored")
	}
}

func TestManualMode(t *testing.T) {
	markup := strings.Replace(threePanels, "data-atabs>", "data-atabs data-atabs-manual>", 1)
	f := newTestGroup(t, markup, "")
	if !f.g.Manual() {
		t.Fatal("Manual() = false")
	}

	if !f.g.HandleKey(tabs.KeyRight, f.target(t, 0)) {
		t.Error("Right should be handled")
	}
	if got := mustActive(t, f.g); got != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", got)
	}
	if got, _ := f.g.SelectedIndex(); got != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", got)
	}
	if got := f.visiblePanels(); len(got) != 1 || got[0] != "p1" {
		t.Errorf("visible panels = %v, want [p1]", got)
	}
	if f.doc.ActiveElement() != f.tab(t, 1) {
		t.Error("focus should move to the second tab")
	}
	if f.loc.Hash() != "" {
		t.Errorf("hash = %q, want unchanged", f.loc.Hash())
	}

	if !f.g.HandleKey(tabs.KeyEnter, f.target(t, 1)) {
		t.Error("Enter on a tab should be handled")
	}
	if got := f.visiblePanels(); len(got) != 1 || got[0] != "p2" {
		t.Errorf("visible panels = %v, want [p2]", got)
	}
	if f.loc.Hash() != "p2" {
		t.Errorf("hash = %q, want p2", f.loc.Hash())
	}
	assertProjection(t, f)

	f.g.HandleKey(tabs.KeyRight, f.target(t, 1))
	f.g.HandleKey(tabs.KeySpace, f.target(t, 2))
	if got, _ := f.g.SelectedIndex(); got != 2 {
		t.Errorf("Space should commit, SelectedIndex() = %d", got)
	}
}

func TestHandleKey_EnterOnCloseControl(t *testing.T) {
	markup := strings.Replace(threePanels, "data-atabs>", "data-atabs data-atabs-closeable>", 1)
	f := newTestGroup(t, markup, "")

	wrapper := f.doc.Children(f.g.TabList())[0]
	closeBtn := f.doc.Children(wrapper)[1]
	target := f.g.TargetOf(closeBtn)
	if target.Role != tabs.RoleClose {
		t.Fatalf("TargetOf(close) = %+v", target)
	}
	if f.g.HandleKey(tabs.KeyEnter, target) {
		t.Error("Enter on a close control is left to the host")
	}
	if f.g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", f.g.Len())
	}
	if ti, _ := f.doc.Attr(closeBtn, "tabindex"); ti != "0" {
		t.Errorf("selected close tabindex = %q, want 0", ti)
	}
}

func TestHandleKey_TabRevealsPanel(t *testing.T) {
	markup := strings.Replace(threePanels, "data-atabs>", "data-atabs data-atabs-manual>", 1)
	f := newTestGroup(t, markup, "")

	f.g.HandleKey(tabs.KeyRight, f.target(t, 0))
	if f.g.HandleKey(tabs.KeyTab, f.target(t, 1)) {
		t.Error("Tab must not suppress the host's focus move")
	}
	if got := mustActive(t, f.g); got != 0 {
		t.Errorf("ActiveIndex() = %d, want selected tab 0", got)
	}
	panel := f.doc.ElementByID("p1")
	if ti, _ := f.doc.Attr(panel, "tabindex"); ti != "0" {
		t.Errorf("panel tabindex = %q, want 0", ti)
	}
	if !f.g.PanelReachable() {
		t.Error("PanelReachable() = false")
	}
	if next := f.doc.NextFocusable(f.tab(t, 1), false); next != panel {
		t.Error("the selected panel should be the next focus stop")
	}

	f.g.HandlePanelKey(tabs.KeyTab)
	if _, ok := f.doc.Attr(panel, "tabindex"); ok {
		t.Error("leaving the panel should drop its tabindex")
	}
}

func TestHandleKey_TabRevealsLaterPanel(t *testing.T) {
	f := newTestGroup(t, threePanels+`<button id="after">after</button>`, "")
	f.g.Activate(1)

	tab := f.tab(t, 1)
	f.doc.Focus(tab)
	f.g.FocusChanged(tab, nil)
	f.g.HandleKey(tabs.KeyTab, f.target(t, 1))

	panel := f.doc.ElementByID("p2")
	next := f.doc.NextFocusable(tab, false)
	if next != panel {
		t.Fatalf("next stop after tab 2 = %q, want p2", attr(f, next, "id"))
	}

	f.doc.Focus(panel)
	f.g.FocusChanged(panel, tab)
	after := f.doc.ElementByID("after")
	if got := f.doc.NextFocusable(panel, false); got != after {
		t.Errorf("next stop after the panel = %q, want after", attr(f, got, "id"))
	}

	f.g.HandlePanelKey(tabs.KeyTab)
	if _, ok := f.doc.Attr(panel, "tabindex"); ok {
		t.Error("leaving the panel should drop its tabindex")
	}
	if got := f.doc.NextFocusable(tab, false); got != after {
		t.Errorf("next stop after tab 2 = %q, want after", attr(f, got, "id"))
	}
}

func TestFocusChanged(t *testing.T) {
	markup := `<div id="g" data-atabs>
<section data-atabs-panel id="a"></section>
<section data-atabs-panel id="b" data-atabs-disabled></section>
<section data-atabs-panel id="c"></section>
</div>`
	f := newTestGroup(t, markup, "")

	first := f.tab(t, 0)
	f.doc.Focus(first)
	if !f.g.FocusChanged(first, nil) {
		t.Fatal("focus on an enabled tab should be accepted")
	}
	if f.g.Focus().Role != tabs.RoleTab || f.g.Focus().Index != 0 {
		t.Errorf("Focus() = %+v", f.g.Focus())
	}

	disabled := f.doc.ElementByID(f.g.Entries()[1].TabID)
	f.doc.Focus(disabled)
	if f.g.FocusChanged(disabled, first) {
		t.Error("focus on a disabled tab should be refused")
	}
	if f.doc.ActiveElement() != first {
		t.Error("focus should return to the previous element")
	}

	third := f.tab(t, 1)
	f.doc.Focus(third)
	f.g.FocusChanged(third, first)
	if got := mustActive(t, f.g); got != 1 {
		t.Errorf("ActiveIndex() = %d, want focused tab 1", got)
	}
	if !strings.Contains(attr(f, f.doc.Children(f.g.TabList())[2], "class"), "focused") {
		t.Error("focused tab wrapper should carry the focused class")
	}
}

func TestFocusChanged_LeavingPanel(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	f.g.HandleKey(tabs.KeyTab, f.target(t, 0))
	panel := f.doc.ElementByID("p1")

	f.doc.Focus(panel)
	f.g.FocusChanged(panel, f.tab(t, 0))
	if !f.g.PanelReachable() {
		t.Fatal("panel should stay reachable while focused")
	}

	f.doc.Focus(f.tab(t, 0))
	f.g.FocusChanged(f.tab(t, 0), panel)
	if f.g.PanelReachable() {
		t.Error("blurring the panel should take it out of the tab order")
	}
}

func TestHashChanged(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	if !f.g.HashChanged("#p3") {
		t.Fatal("HashChanged(p3) = false")
	}
	if got := mustActive(t, f.g); got != 2 {
		t.Errorf("ActiveIndex() = %d, want 2", got)
	}
	if f.g.HashChanged("missing") || f.g.HashChanged("") {
		t.Error("unknown fragments should be ignored")
	}
	assertProjection(t, f)
}

func TestHashRoundTrip(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	f.g.Click(f.target(t, 2))
	hash := f.loc.Hash()
	if hash != "p3" {
		t.Fatalf("hash after click = %q, want p3", hash)
	}

	fresh := newTestGroup(t, threePanels, hash)
	if got := mustActive(t, fresh.g); got != 2 {
		t.Errorf("fresh ActiveIndex() = %d, want 2", got)
	}
}

func TestWriteHash_FallsBackToAssign(t *testing.T) {
	f := newTestGroup(t, threePanels, "")
	f.g.MoveNext()
	f.g.MoveNext()
	if got := len(f.loc.History()); got != 1 {
		t.Errorf("replace history len = %d, want 1", got)
	}

	mem := location.NewMemory("")
	doc, err := dom.ParseString("<html><body>" + threePanels + "</body></html>")
	if err != nil {
		t.Fatal(err)
	}
	g := tabs.New(doc.ElementByID("g"), tabs.Host{Doc: doc, Location: location.AssignOnly{Location: mem}}, tabs.DefaultOptions())
	g.MoveNext()
	g.MoveNext()
	if got := mem.History(); len(got) != 3 || got[2] != "p3" {
		t.Errorf("assign history = %v, want 3 entries ending in p3", got)
	}
}

func TestKey_String(t *testing.T) {
	if tabs.KeyDelete.String() != "delete" {
		t.Errorf("KeyDelete.String() = %q", tabs.KeyDelete.String())
	}
	if tabs.Key(99).String() != "unknown" {
		t.Errorf("Key(99).String() = %q", tabs.Key(99).String())
	}
}

func attr(f fixture, n tabs.Node, name string) string {
	v, _ := f.doc.Attr(n, name)
	return v
}
