package tabs_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ShayCichocki/atabs/internal/dom"
	"github.com/ShayCichocki/atabs/internal/location"
	"github.com/ShayCichocki/atabs/pkg/tabs"
)

const threePanels = `<div id="g" data-atabs>
<section data-atabs-panel id="p1"><h2 data-atabs-heading>One</h2><p>first</p></section>
<section data-atabs-panel id="p2"><h2 data-atabs-heading>Two</h2><p>second</p></section>
<section data-atabs-panel id="p3"><h2 data-atabs-heading>Three</h2><p>third</p></section>
</div>`

type fixture struct {
	g   *tabs.Group
	doc *dom.Document
	loc *location.Memory
}

// newTestGroup parses markup and builds a group on the element with id "g".
func newTestGroup(t *testing.T, markup, hash string) fixture {
	t.Helper()
	return newTestGroupWith(t, markup, hash, tabs.DefaultOptions())
}

func newTestGroupWith(t *testing.T, markup, hash string, opts tabs.Options) fixture {
	t.Helper()
	doc, err := dom.ParseString("<html><body>" + markup + "</body></html>")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	root := doc.ElementByID("g")
	if root == nil {
		t.Fatal("markup has no element with id g")
	}
	loc := location.NewMemory(hash)
	g := tabs.New(root, tabs.Host{Doc: doc, Location: loc, NewID: sequentialIDs()}, opts)
	return fixture{g: g, doc: doc, loc: loc}
}

func sequentialIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func (f fixture) tab(t *testing.T, i int) tabs.Node {
	t.Helper()
	recs := f.g.Tabs()
	if i < 0 || i >= len(recs) {
		t.Fatalf("tab index %d out of range (len %d)", i, len(recs))
	}
	return f.doc.ElementByID(recs[i].TabID)
}

func (f fixture) target(t *testing.T, i int) tabs.Target {
	t.Helper()
	return f.g.TargetOf(f.tab(t, i))
}

func (f fixture) visiblePanels() []string {
	var ids []string
	for _, e := range f.g.Entries() {
		panel := f.doc.ElementByID(e.ID)
		if _, hidden := f.doc.Attr(panel, "hidden"); !hidden {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// assertProjection checks that exactly the selected tab is marked selected
// and exactly its panel is visible.
func assertProjection(t *testing.T, f fixture) {
	t.Helper()
	sel, ok := f.g.SelectedIndex()
	if !ok {
		t.Fatal("group has no selection")
	}
	want := f.g.Tabs()[sel]

	var selectedTabs []string
	for _, e := range f.g.Entries() {
		tab := f.doc.ElementByID(e.TabID)
		if v, _ := f.doc.Attr(tab, "aria-selected"); v == "true" {
			selectedTabs = append(selectedTabs, e.ID)
			if c, _ := f.doc.Attr(tab, "aria-controls"); c != e.ID {
				t.Errorf("aria-controls = %q, want %q", c, e.ID)
			}
			if ti, _ := f.doc.Attr(tab, "tabindex"); ti != "0" {
				t.Errorf("selected tab tabindex = %q, want 0", ti)
			}
		} else if _, has := f.doc.Attr(tab, "aria-controls"); has {
			t.Errorf("unselected tab %s still has aria-controls", e.ID)
		}
	}
	if len(selectedTabs) != 1 || selectedTabs[0] != want.ID {
		t.Errorf("selected tabs = %v, want [%s]", selectedTabs, want.ID)
	}
	if got := f.visiblePanels(); len(got) != 1 || got[0] != want.ID {
		t.Errorf("visible panels = %v, want [%s]", got, want.ID)
	}
}

func TestNew_InitialIndex(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		hash   string
		want   int
	}{
		{"no hash no default", threePanels, "", 0},
		{"hash matches third", threePanels, "p3", 2},
		{"hash with leading mark", threePanels, "#p2", 1},
		{"unknown hash", threePanels, "nope", 0},
		{"declared default", strings.Replace(threePanels, `data-atabs-panel id="p2"`, `data-atabs-panel="default" id="p2"`, 1), "", 1},
		{"hash wins over earlier default", strings.Replace(threePanels, `data-atabs-panel id="p1"`, `data-atabs-panel="default" id="p1"`, 1), "p3", 2},
		{"hash wins over later default", strings.Replace(threePanels, `data-atabs-panel id="p3"`, `data-atabs-panel="default" id="p3"`, 1), "p1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestGroup(t, tt.markup, tt.hash)
			got, ok := f.g.ActiveIndex()
			if !ok || got != tt.want {
				t.Errorf("ActiveIndex() = %d, %t, want %d", got, ok, tt.want)
			}
			if sel, _ := f.g.SelectedIndex(); sel != tt.want {
				t.Errorf("SelectedIndex() = %d, want %d", sel, tt.want)
			}
			assertProjection(t, f)
		})
	}
}

func TestNew_FirstDefaultWins(t *testing.T) {
	markup := `<div id="g" data-atabs>
<section data-atabs-panel id="a"></section>
<section data-atabs-panel="default" id="b"></section>
<section data-atabs-panel="default" id="c"></section>
</div>`
	f := newTestGroup(t, markup, "")
	if got, _ := f.g.ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", got)
	}
}

func TestNew_NoPanelsLeavesRootUntouched(t *testing.T) {
	markup := `<div id="g" data-atabs><p>nothing here</p></div>`
	doc, err := dom.ParseString("<html><body>" + markup + "</body></html>")
	if err != nil {
		t.Fatal(err)
	}
	before := doc.String()

	g := tabs.New(doc.ElementByID("g"), tabs.Host{Doc: doc}, tabs.DefaultOptions())

	if after := doc.String(); after != before {
		t.Errorf("document changed:\nbefore %s\nafter  %s", before, after)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
	if _, ok := g.ActiveIndex(); ok {
		t.Error("ActiveIndex() ok = true on empty group")
	}
	if g.TabList() != nil {
		t.Error("TabList() should be nil before the first tab")
	}

	panel := doc.CreateElement("section")
	doc.SetAttr(panel, "id", "late")
	idx, ok := g.AddTab(panel, tabs.AddTabOptions{Label: "Late"})
	if !ok || idx != 0 {
		t.Fatalf("AddTab() = %d, %t, want 0, true", idx, ok)
	}
	if g.TabList() == nil {
		t.Fatal("TabList() nil after AddTab")
	}
	if _, hidden := doc.Attr(panel, "hidden"); hidden {
		t.Error("first added panel should be visible")
	}
	if !doc.Contains(doc.ElementByID("g"), panel) {
		t.Error("panel outside the root should be appended to it")
	}
}

func TestNew_Labels(t *testing.T) {
	markup := `<div id="g" data-atabs>
<section data-atabs-panel data-atabs-tab-label="From attribute"><h2 data-atabs-heading>Dropped</h2></section>
<section data-atabs-panel><h2 data-atabs-heading="keep">  Kept
 heading </h2></section>
<section data-atabs-panel><p>no heading</p></section>
</div>`
	f := newTestGroup(t, markup, "")

	recs := f.g.Tabs()
	want := []string{"From attribute", "Kept heading", "Tab 3"}
	for i, w := range want {
		if recs[i].Label != w {
			t.Errorf("tab %d label = %q, want %q", i, recs[i].Label, w)
		}
		if got := strings.TrimSpace(f.doc.TextContent(f.tab(t, i))); got != w {
			t.Errorf("tab %d text = %q, want %q", i, got, w)
		}
	}

	if strings.Contains(f.doc.String(), "Dropped") {
		t.Error("heading without keep should be removed")
	}
	if !strings.Contains(f.doc.String(), "Kept") {
		t.Error("heading marked keep should stay")
	}
}

func TestNew_GeneratedIDs(t *testing.T) {
	markup := `<div data-atabs class="wrap">
<section data-atabs-panel></section>
<section data-atabs-panel></section>
</div>`
	doc, err := dom.ParseString("<html><body>" + markup + "</body></html>")
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Groups("data-atabs")[0]
	g := tabs.New(root, tabs.Host{Doc: doc, NewID: sequentialIDs()}, tabs.DefaultOptions())

	if g.ID() != "atab_1" {
		t.Errorf("ID() = %q, want atab_1", g.ID())
	}
	recs := g.Tabs()
	if recs[0].ID != "atab_1_panel_1" || recs[1].ID != "atab_1_panel_2" {
		t.Errorf("panel ids = %q, %q", recs[0].ID, recs[1].ID)
	}
	if recs[0].TabID != "atab_1_tab_1" {
		t.Errorf("tab id = %q, want atab_1_tab_1", recs[0].TabID)
	}
	if list := doc.ElementByID("atab_1_list"); list == nil {
		t.Error("tab list should be named after the group")
	}
	if labelled, _ := doc.Attr(doc.ElementByID(recs[1].ID), "aria-labelledby"); labelled != recs[1].TabID {
		t.Errorf("aria-labelledby = %q, want %q", labelled, recs[1].TabID)
	}
}

func TestNew_DisabledPanel(t *testing.T) {
	markup := `<div id="g" data-atabs>
<section data-atabs-panel id="a"></section>
<section data-atabs-panel="default" id="b" data-atabs-disabled></section>
<section data-atabs-panel id="c"></section>
</div>`
	f := newTestGroup(t, markup, "b")

	if f.g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.g.Len())
	}
	if got, _ := f.g.ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex() = %d, want 0", got)
	}

	entries := f.g.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() len = %d, want 3", len(entries))
	}
	if entries[1].Index != -1 || !entries[1].Disabled {
		t.Errorf("disabled entry = %+v", entries[1])
	}
	tab := f.doc.ElementByID(entries[1].TabID)
	if v, _ := f.doc.Attr(tab, "aria-disabled"); v != "true" {
		t.Errorf("aria-disabled = %q, want true", v)
	}

	target := f.g.TargetOf(tab)
	if target.Role != tabs.RoleTab || !target.Disabled {
		t.Errorf("TargetOf(disabled) = %+v", target)
	}
	if f.g.Click(target) {
		t.Error("Click() on disabled tab should be refused")
	}
	if f.g.HashChanged("b") {
		t.Error("HashChanged() to a disabled panel should be ignored")
	}

	for i := 0; i < 5; i++ {
		f.g.MoveNext()
		if id := f.g.Tabs()[mustActive(t, f.g)].ID; id == "b" {
			t.Fatal("navigation reached the disabled tab")
		}
	}
	assertProjection(t, f)
}

func TestNew_PanelWrapper(t *testing.T) {
	markup := `<div id="g" data-atabs>
<div data-atabs-panel-wrap>
<section data-atabs-panel id="a"></section>
<section data-atabs-panel id="b"></section>
</div>
<section data-atabs-panel id="outside"></section>
</div>`
	f := newTestGroup(t, markup, "")
	if f.g.Len() != 2 {
		t.Errorf("Len() = %d, want panels of the wrapper only", f.g.Len())
	}
}

func TestNew_ReusesTabListAndRemovesTOC(t *testing.T) {
	markup := `<nav id="toc"><a href="#a">A</a></nav>
<div id="g" data-atabs data-atabs-toc="toc">
<div data-atabs-list>placeholder</div>
<section data-atabs-panel id="a"></section>
</div>`
	f := newTestGroup(t, markup, "")

	if f.doc.ElementByID("toc") != nil {
		t.Error("table of contents should be removed")
	}
	list := f.g.TabList()
	if _, ok := f.doc.Attr(list, "data-atabs-list"); !ok {
		t.Error("existing tab list element should be reused")
	}
	if strings.Contains(f.doc.TextContent(list), "placeholder") {
		t.Error("tab list content should be cleared")
	}
	if role, _ := f.doc.Attr(list, "role"); role != "tablist" {
		t.Errorf("role = %q, want tablist", role)
	}
}

func TestNew_Orientation(t *testing.T) {
	f := newTestGroup(t, strings.Replace(threePanels, "data-atabs>", `data-atabs data-atabs-orientation="vertical">`, 1), "")
	if f.g.Orientation() != tabs.Vertical {
		t.Errorf("Orientation() = %q, want vertical", f.g.Orientation())
	}
	if v, _ := f.doc.Attr(f.g.TabList(), "aria-orientation"); v != "vertical" {
		t.Errorf("aria-orientation = %q, want vertical", v)
	}

	h := newTestGroup(t, threePanels, "")
	if _, ok := h.doc.Attr(h.g.TabList(), "aria-orientation"); ok {
		t.Error("horizontal lists should not carry aria-orientation")
	}
}

func TestNew_OptionsAreCopied(t *testing.T) {
	opts := tabs.DefaultOptions()
	opts.TabClass = "custom-tab"
	f := newTestGroupWith(t, threePanels, "", opts)
	opts.TabClass = "changed"

	panel := f.doc.CreateElement("section")
	f.g.AddTab(panel, tabs.AddTabOptions{})

	tab := f.tab(t, 3)
	if !dom.HasClass(tab, "custom-tab") {
		t.Error("group should keep the options it was built with")
	}
	if dom.HasClass(tab, "changed") {
		t.Error("later changes to the options leaked into the group")
	}
	if tabs.DefaultOptions().TabClass != "atabs__list__tab" {
		t.Error("DefaultOptions() must return a fresh value")
	}
}

func TestOptions_Normalize(t *testing.T) {
	o := tabs.Options{TabClass: "mine", DefaultOrientation: "diagonal"}.Normalize()
	if o.TabClass != "mine" {
		t.Errorf("TabClass = %q, want mine", o.TabClass)
	}
	if o.PanelAttribute != "data-atabs-panel" {
		t.Errorf("PanelAttribute = %q, want default", o.PanelAttribute)
	}
	if o.DefaultOrientation != tabs.Horizontal {
		t.Errorf("DefaultOrientation = %q, want horizontal", o.DefaultOrientation)
	}
}

func TestAddTab(t *testing.T) {
	t.Run("nil panel", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		if _, ok := f.g.AddTab(nil, tabs.AddTabOptions{}); ok {
			t.Error("AddTab(nil) ok = true")
		}
		if f.g.Len() != 3 {
			t.Errorf("Len() = %d, want 3", f.g.Len())
		}
	})

	t.Run("append auto activate", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		panel := f.doc.CreateElement("section")
		idx, ok := f.g.AddTab(panel, tabs.AddTabOptions{Label: "New", AutoActivate: true})
		if !ok || idx != 3 {
			t.Fatalf("AddTab() = %d, %t, want 3, true", idx, ok)
		}
		if got := mustActive(t, f.g); got != 3 {
			t.Errorf("ActiveIndex() = %d, want 3", got)
		}
		assertProjection(t, f)
	})

	t.Run("prepend auto activate", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		panel := f.doc.CreateElement("section")
		idx, ok := f.g.AddTab(panel, tabs.AddTabOptions{Label: "First", Prepend: true, AutoActivate: true})
		if !ok || idx != 0 {
			t.Fatalf("AddTab() = %d, %t, want 0, true", idx, ok)
		}
		if got := mustActive(t, f.g); got != 0 {
			t.Errorf("ActiveIndex() = %d, want 0", got)
		}
		if f.g.Entries()[0].Label != "First" {
			t.Errorf("first entry = %q, want First", f.g.Entries()[0].Label)
		}
		assertProjection(t, f)
	})

	t.Run("prepend keeps selection on same record", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "p2")
		f.g.AddTab(f.doc.CreateElement("section"), tabs.AddTabOptions{Prepend: true})
		if got := mustActive(t, f.g); got != 2 {
			t.Errorf("ActiveIndex() = %d, want 2", got)
		}
		if id := f.g.Tabs()[2].ID; id != "p2" {
			t.Errorf("active id = %q, want p2", id)
		}
		assertProjection(t, f)
	})

	t.Run("hash match after init commits", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "late")
		panel := f.doc.CreateElement("section")
		f.doc.SetAttr(panel, "id", "late")
		idx, _ := f.g.AddTab(panel, tabs.AddTabOptions{})
		if got, _ := f.g.SelectedIndex(); got != idx {
			t.Errorf("SelectedIndex() = %d, want %d", got, idx)
		}
		assertProjection(t, f)
	})

	t.Run("default after init does not steal", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		panel := f.doc.CreateElement("section")
		f.doc.SetAttr(panel, "data-atabs-panel", "default")
		f.g.AddTab(panel, tabs.AddTabOptions{})
		if got := mustActive(t, f.g); got != 0 {
			t.Errorf("ActiveIndex() = %d, want 0", got)
		}
	})

	t.Run("custom class", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		panel := f.doc.CreateElement("section")
		f.doc.SetAttr(panel, "data-atabs-tab-class", "from-attr")
		f.g.AddTab(panel, tabs.AddTabOptions{})
		if !dom.HasClass(f.tab(t, 3), "from-attr") {
			t.Error("custom class attribute not applied")
		}

		other := f.doc.CreateElement("section")
		f.doc.SetAttr(other, "data-atabs-tab-class", "from-attr")
		f.g.AddTab(other, tabs.AddTabOptions{CustomClass: "from-arg"})
		if !dom.HasClass(f.tab(t, 4), "from-arg") || dom.HasClass(f.tab(t, 4), "from-attr") {
			t.Error("explicit custom class should win")
		}
	})
}

func TestRemoveTab(t *testing.T) {
	t.Run("last and active", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "p3")
		if !f.g.RemoveTab(2) {
			t.Fatal("RemoveTab(2) = false")
		}
		if f.g.Len() != 2 {
			t.Errorf("Len() = %d, want 2", f.g.Len())
		}
		if got := mustActive(t, f.g); got != 1 {
			t.Errorf("ActiveIndex() = %d, want 1", got)
		}
		if f.loc.Hash() != "p2" {
			t.Errorf("hash = %q, want p2", f.loc.Hash())
		}
		if f.doc.ElementByID("p3") != nil {
			t.Error("removed panel still in document")
		}
		assertProjection(t, f)
	})

	t.Run("before active keeps record", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "p3")
		f.g.RemoveTab(0)
		if id := f.g.Tabs()[mustActive(t, f.g)].ID; id != "p3" {
			t.Errorf("active id = %q, want p3", id)
		}
		assertProjection(t, f)
	})

	t.Run("active in the middle", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "p2")
		f.g.RemoveTab(1)
		if id := f.g.Tabs()[mustActive(t, f.g)].ID; id != "p3" {
			t.Errorf("active id = %q, want p3", id)
		}
	})

	t.Run("only tab", func(t *testing.T) {
		f := newTestGroup(t, `<div id="g" data-atabs><section data-atabs-panel id="solo"></section></div>`, "")
		if !f.g.RemoveTab(0) {
			t.Fatal("RemoveTab(0) = false")
		}
		if _, ok := f.g.ActiveIndex(); ok {
			t.Error("ActiveIndex() ok = true on empty group")
		}
		if _, ok := f.g.Activate(0); ok {
			t.Error("Activate() on empty group ok = true")
		}
		if f.g.HandleKey(tabs.KeyDelete, tabs.Target{Role: tabs.RoleTab}) {
			t.Error("HandleKey() on empty group should do nothing")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		for _, i := range []int{-1, 3, 10} {
			if f.g.RemoveTab(i) {
				t.Errorf("RemoveTab(%d) = true", i)
			}
		}
		if f.g.Len() != 3 {
			t.Errorf("Len() = %d, want 3", f.g.Len())
		}
	})

	t.Run("ids stay unique after removal", func(t *testing.T) {
		f := newTestGroup(t, threePanels, "")
		f.g.RemoveTab(0)
		f.g.AddTab(f.doc.CreateElement("section"), tabs.AddTabOptions{})
		seen := map[string]bool{}
		for _, r := range f.g.Tabs() {
			if seen[r.TabID] {
				t.Errorf("duplicate tab id %q", r.TabID)
			}
			seen[r.TabID] = true
		}
	})
}

func TestCloseableGroupOfTwo(t *testing.T) {
	markup := `<div id="g" data-atabs data-atabs-closeable>
<section data-atabs-panel id="first"></section>
<section data-atabs-panel id="second"></section>
</div>`
	f := newTestGroup(t, markup, "")

	var target tabs.Target
	for _, c := range f.doc.Children(f.doc.Children(f.g.TabList())[0]) {
		if tt := f.g.TargetOf(c); tt.Role == tabs.RoleClose {
			target = tt
		}
	}
	if target.Role != tabs.RoleClose || target.Index != 0 {
		t.Fatalf("close target = %+v", target)
	}

	if !f.g.Click(target) {
		t.Fatal("Click(close) = false")
	}
	if f.g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.g.Len())
	}
	if got := mustActive(t, f.g); got != 0 {
		t.Errorf("ActiveIndex() = %d, want 0", got)
	}
	if f.loc.Hash() != "second" {
		t.Errorf("hash = %q, want second", f.loc.Hash())
	}
	if f.doc.ActiveElement() != f.tab(t, 0) {
		t.Error("remaining tab should be focused")
	}
	if f.g.Focus().Role != tabs.RoleTab {
		t.Errorf("Focus() = %+v", f.g.Focus())
	}
	assertProjection(t, f)
}

func TestDispose(t *testing.T) {
	f := newTestGroup(t, threePanels, "p2")
	f.g.Dispose()

	if strings.Contains(f.doc.String(), "atabs__list") {
		t.Error("tab list should be removed")
	}
	for _, id := range []string{"p1", "p2", "p3"} {
		panel := f.doc.ElementByID(id)
		if _, hidden := f.doc.Attr(panel, "hidden"); hidden {
			t.Errorf("panel %s still hidden", id)
		}
		if _, ok := f.doc.Attr(panel, "role"); ok {
			t.Errorf("panel %s still has role", id)
		}
	}
	if dom.HasClass(f.doc.ElementByID("g"), "atabs") {
		t.Error("group class should be removed")
	}
	if _, ok := f.g.Activate(0); ok {
		t.Error("Activate() after Dispose ok = true")
	}
	if _, ok := f.g.AddTab(f.doc.CreateElement("section"), tabs.AddTabOptions{}); ok {
		t.Error("AddTab() after Dispose ok = true")
	}
	if !f.g.Disposed() {
		t.Error("Disposed() = false")
	}
	f.g.Dispose()
}

func TestDispose_RestoresAuthorMarkup(t *testing.T) {
	markup := `<div id="g" data-atabs>
<div id="mylist" data-atabs-list>placeholder</div>
<section data-atabs-panel id="a"><h2 data-atabs-heading>Alpha</h2><p>one</p></section>
<section data-atabs-panel id="b"><h2 data-atabs-heading="keep">Beta</h2><p>two</p></section>
</div>`
	f := newTestGroup(t, markup, "")
	if f.doc.ElementByID("mylist") != nil {
		t.Fatal("reused list should carry the generated id while enhanced")
	}

	f.g.Dispose()

	list := f.doc.ElementByID("mylist")
	if list == nil {
		t.Fatal("author tab list should survive Dispose")
	}
	if first := f.doc.Children(f.doc.ElementByID("g"))[0]; first != list {
		t.Error("author tab list should return to the top of the root")
	}
	if _, ok := f.doc.Attr(list, "role"); ok {
		t.Error("author tab list still has role")
	}
	if len(f.doc.Children(list)) != 0 {
		t.Error("author tab list should be emptied of generated tabs")
	}

	for _, tt := range []struct{ panel, heading string }{{"a", "Alpha"}, {"b", "Beta"}} {
		children := f.doc.Children(f.doc.ElementByID(tt.panel))
		if len(children) != 2 {
			t.Errorf("panel %s has %d children, want 2", tt.panel, len(children))
			continue
		}
		if got := f.doc.TextContent(children[0]); got != tt.heading {
			t.Errorf("panel %s first child = %q, want heading %q", tt.panel, got, tt.heading)
		}
	}
}

func mustActive(t *testing.T, g *tabs.Group) int {
	t.Helper()
	i, ok := g.ActiveIndex()
	if !ok {
		t.Fatal("group has no active tab")
	}
	return i
}
