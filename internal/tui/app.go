package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/ShayCichocki/atabs/internal/dom"
	"github.com/ShayCichocki/atabs/internal/location"
	"github.com/ShayCichocki/atabs/internal/logging"
	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// DocumentChangedMsg is sent when the watched document changed on disk.
type DocumentChangedMsg struct{}

// Options configures an App.
type Options struct {
	// Load parses the document. It is called once by New and again on
	// every reload.
	Load func() (*dom.Document, error)
	Tabs tabs.Options
	// Location holds the fragment. Nil disables fragment features.
	Location tabs.Location
	Logger   tabs.Logger
	// NewID overrides id generation for groups.
	NewID func(prefix string) string
	// Changes triggers a reload on every receive.
	Changes  <-chan struct{}
	Mouse    bool
	ShowHelp bool
}

// App is the bubbletea model hosting every tab group of a document. It
// plays the browser: it owns sequential focus, turns keys and clicks into
// group calls and renders what the groups projected.
type App struct {
	opts Options
	log  tabs.Logger

	doc    *dom.Document
	groups []*tabs.Group
	// current is the group prompts apply to when nothing is focused.
	current int

	keys     keyMap
	zones    *zone.Manager
	tabBar   TabBar
	viewport viewport.Model
	prompt   *InputField
	header   *Header
	footer   *Footer

	panelStyle        lipgloss.Style
	focusedPanelStyle lipgloss.Style

	width    int
	height   int
	quitting bool
}

// New loads the document and builds a group on every group root in it.
func New(opts Options) (*App, error) {
	if opts.Load == nil {
		return nil, fmt.Errorf("no document loader")
	}
	opts.Tabs = opts.Tabs.Normalize()

	a := &App{
		opts:     opts,
		log:      opts.Logger,
		keys:     newKeyMap(),
		viewport: viewport.New(80, 20),
		prompt:   NewInputField(),
		header:   NewHeader(),
		width:    80,
		height:   24,

		panelStyle: lipgloss.NewStyle().
			Padding(0, 1),

		focusedPanelStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("205")),
	}
	if a.log == nil {
		a.log = logging.NopLogger()
	}
	if opts.Mouse {
		a.zones = zone.New()
	}
	a.tabBar = NewTabBar(a.zones)
	a.footer = NewFooter(a.keys, opts.ShowHelp)

	if err := a.Reload(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload reparses the document and rebuilds its groups. The fragment
// survives through the location.
func (a *App) Reload() error {
	doc, err := a.opts.Load()
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	for _, g := range a.groups {
		g.Dispose()
	}

	host := tabs.Host{Doc: doc, Location: a.opts.Location, NewID: a.opts.NewID}
	a.doc = doc
	a.groups = nil
	a.current = 0
	for _, root := range doc.Groups(a.opts.Tabs.GroupAttribute) {
		a.groups = append(a.groups, tabs.New(root, host, a.opts.Tabs, tabs.WithLogger(a.log)))
	}
	a.log.Log("[tui] loaded document title=%q groups=%d", doc.Title(), len(a.groups))

	a.header.SetDocument(doc.Title(), len(a.groups))
	a.refresh()
	return nil
}

// Document returns the hosted document.
func (a *App) Document() *dom.Document {
	return a.doc
}

// Groups returns the hosted groups in document order.
func (a *App) Groups() []*tabs.Group {
	return a.groups
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return waitForChange(a.opts.Changes)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return DocumentChangedMsg{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		a.footer.SetWidth(msg.Width)
		a.prompt.SetWidth(msg.Width)

	case tea.KeyMsg:
		if a.prompt.Active() {
			_, cmd = a.prompt.Update(msg)
			break
		}
		cmd = a.handleKey(msg)

	case tea.MouseMsg:
		cmd = a.handleMouse(msg)

	case PromptSubmittedMsg:
		a.submit(msg)

	case DocumentChangedMsg:
		if err := a.Reload(); err != nil {
			a.footer.SetMessage(err.Error(), false)
		} else {
			a.footer.SetMessage("document reloaded", true)
		}
		cmd = waitForChange(a.opts.Changes)

	default:
		if a.prompt.Active() {
			_, cmd = a.prompt.Update(msg)
		}
	}

	if a.quitting {
		return a, cmd
	}
	a.refresh()
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		if a.zones != nil {
			a.zones.Close()
		}
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.footer.ToggleHelp()
		return nil
	case key.Matches(msg, a.keys.Add):
		if a.targetGroup() == nil {
			a.footer.SetMessage("no tab group to add to", false)
			return nil
		}
		return a.prompt.Open(PromptAddTab)
	case key.Matches(msg, a.keys.Jump):
		return a.prompt.Open(PromptJump)
	case key.Matches(msg, a.keys.Next):
		a.moveFocus(false)
		return nil
	case key.Matches(msg, a.keys.Prev):
		a.moveFocus(true)
		return nil
	case key.Matches(msg, a.keys.PageUp), key.Matches(msg, a.keys.PageDown):
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}

	k := a.keys.tabsKey(msg)
	if k == tabs.KeyNone {
		return nil
	}
	if !a.dispatch(k) {
		// Unhandled arrows scroll, as a browser would.
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}
	return nil
}

// dispatch delivers k to the group owning the focused element and applies
// the host default when the group leaves the key alone. It reports whether
// the key was consumed.
func (a *App) dispatch(k tabs.Key) bool {
	focused := a.doc.ActiveElement()
	g, t := a.owner(focused)
	if g == nil {
		return false
	}

	switch t.Role {
	case tabs.RolePanel:
		g.HandlePanelKey(k)
		return false
	case tabs.RoleTab, tabs.RoleClose:
		if g.HandleKey(k, t) {
			a.log.Log("[tui] key=%s group=%s handled", k, g.ID())
			return true
		}
		// Enter and Space on a button click it.
		if t.Role == tabs.RoleClose && (k == tabs.KeyEnter || k == tabs.KeySpace) {
			return g.Click(t)
		}
	}
	return false
}

// moveFocus performs sequential focus navigation from the focused element.
func (a *App) moveFocus(backward bool) {
	prev := a.doc.ActiveElement()
	if g, t := a.owner(prev); g != nil {
		switch t.Role {
		case tabs.RoleTab, tabs.RoleClose:
			g.HandleKey(tabs.KeyTab, t)
		case tabs.RolePanel:
			g.HandlePanelKey(tabs.KeyTab)
		}
	}

	next := a.doc.NextFocusable(prev, backward)
	if next == nil {
		return
	}
	a.doc.Focus(next)
	a.focusChanged(next, prev)
}

// focusChanged notifies every group owning either end of a focus move. It
// returns false when a group refused the move.
func (a *App) focusChanged(n, prev tabs.Node) bool {
	ok := true
	for i, g := range a.groups {
		if g.TargetOf(n).Role == tabs.RoleNone && g.TargetOf(prev).Role == tabs.RoleNone {
			continue
		}
		if !g.FocusChanged(n, prev) {
			ok = false
		} else if g.TargetOf(n).Role != tabs.RoleNone {
			a.current = i
		}
	}
	return ok
}

// owner returns the group that n belongs to. Tabs and close controls win
// over panels, and among panels the innermost group wins.
func (a *App) owner(n tabs.Node) (*tabs.Group, tabs.Target) {
	if n == nil {
		return nil, tabs.Target{Index: -1}
	}
	var (
		best  *tabs.Group
		bestT = tabs.Target{Index: -1}
	)
	for _, g := range a.groups {
		t := g.TargetOf(n)
		switch t.Role {
		case tabs.RoleTab, tabs.RoleClose:
			return g, t
		case tabs.RolePanel:
			best, bestT = g, t
		}
	}
	return best, bestT
}

func (a *App) targetGroup() *tabs.Group {
	if g, _ := a.owner(a.doc.ActiveElement()); g != nil {
		return g
	}
	if a.current >= 0 && a.current < len(a.groups) {
		return a.groups[a.current]
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !a.opts.Mouse {
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}

	for gi, g := range a.groups {
		for pos := range g.Entries() {
			if a.inZone(tabZoneID(gi, pos), msg) {
				a.ClickTab(gi, pos)
				return nil
			}
			if a.inZone(closeZoneID(gi, pos), msg) {
				a.ClickClose(gi, pos)
				return nil
			}
		}
	}
	return nil
}

func (a *App) inZone(id string, msg tea.MouseMsg) bool {
	if a.zones == nil {
		return false
	}
	z := a.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// ClickTab performs a pointer activation of the tab at display position pos
// of group gi: focus moves to it, then the group reacts to the click.
func (a *App) ClickTab(gi, pos int) bool {
	g, e, ok := a.entry(gi, pos)
	if !ok {
		return false
	}
	n := a.doc.ElementByID(e.TabID)
	prev := a.doc.ActiveElement()
	a.doc.Focus(n)
	if !a.focusChanged(n, prev) {
		a.footer.SetMessage(fmt.Sprintf("%q is disabled", e.Label), false)
		return false
	}
	a.current = gi
	return g.Click(g.TargetOf(n))
}

// ClickClose performs a pointer activation of the close control at display
// position pos of group gi.
func (a *App) ClickClose(gi, pos int) bool {
	g, e, ok := a.entry(gi, pos)
	if !ok || !e.Closeable || e.Disabled {
		return false
	}
	a.current = gi
	if !g.Click(tabs.Target{Role: tabs.RoleClose, Index: e.Index}) {
		return false
	}
	a.footer.SetMessage(fmt.Sprintf("closed %q", e.Label), true)
	return true
}

func (a *App) entry(gi, pos int) (*tabs.Group, tabs.Entry, bool) {
	if gi < 0 || gi >= len(a.groups) {
		return nil, tabs.Entry{}, false
	}
	g := a.groups[gi]
	entries := g.Entries()
	if pos < 0 || pos >= len(entries) {
		return nil, tabs.Entry{}, false
	}
	return g, entries[pos], true
}

func (a *App) submit(msg PromptSubmittedMsg) {
	switch msg.Kind {
	case PromptAddTab:
		g := a.targetGroup()
		if g == nil {
			a.footer.SetMessage("no tab group to add to", false)
			return
		}
		panel := a.doc.CreateElement("section")
		a.doc.SetAttr(panel, a.opts.Tabs.PanelAttribute, "")
		body := a.doc.CreateElement("p")
		a.doc.SetText(body, msg.Value)
		a.doc.AppendChild(panel, body)

		if _, ok := g.AddTab(panel, tabs.AddTabOptions{Label: msg.Value, AutoActivate: true}); !ok {
			a.footer.SetMessage("could not add tab", false)
			return
		}
		a.footer.SetMessage(fmt.Sprintf("added %q", msg.Value), true)

	case PromptJump:
		a.Navigate(msg.Value)
	}
}

// Navigate sets the fragment to hash, as following a link would, and lets
// every group react to it.
func (a *App) Navigate(hash string) bool {
	hash = location.Normalize(hash)
	if a.opts.Location != nil {
		a.opts.Location.AssignHash(hash)
	}

	matched := false
	for _, g := range a.groups {
		if g.HashChanged(hash) {
			matched = true
		}
	}
	if matched {
		a.footer.SetMessage("#"+hash, true)
	} else {
		a.footer.SetMessage(fmt.Sprintf("no tab with id %q", hash), false)
	}
	return matched
}

// refresh rerenders the groups into the viewport.
func (a *App) refresh() {
	if a.opts.Location != nil {
		a.header.SetFragment(a.opts.Location.Hash())
	}

	var blocks []string
	for gi, g := range a.groups {
		if block := a.groupView(gi, g); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, "No tab groups in this document.")
	}

	chrome := a.header.Height() + a.footer.Height() + a.prompt.Height()
	a.viewport.Width = a.width
	a.viewport.Height = max(a.height-chrome, 1)
	a.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (a *App) groupView(gi int, g *tabs.Group) string {
	list := a.tabBar.View(gi, g)
	if list == "" {
		return ""
	}

	style := a.panelStyle
	if g.Focus().Role == tabs.RolePanel {
		style = a.focusedPanelStyle
	}
	text := dom.PlainText(g.SelectedPanel(), nil)

	if g.Orientation() == tabs.Vertical {
		return lipgloss.JoinHorizontal(lipgloss.Top, list, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, style.Render(text))
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	parts := []string{a.header.View(), a.viewport.View()}
	if a.prompt.Active() {
		parts = append(parts, a.prompt.View())
	}
	parts = append(parts, a.footer.View())

	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if a.zones != nil {
		return a.zones.Scan(view)
	}
	return view
}

// NewProgram creates a new Bubbletea program hosting the document.
func NewProgram(opts Options) (*tea.Program, *App, error) {
	app, err := New(opts)
	if err != nil {
		return nil, nil, err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(app, programOpts...), app, nil
}

// Run starts the viewer and blocks until it quits.
func Run(opts Options) error {
	p, _, err := NewProgram(opts)
	if err != nil {
		return err
	}
	_, err = p.Run()
	return err
}
