package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Fieldset: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true,
	atom.Hr: true, atom.Main: true, atom.Nav: true, atom.Ol: true,
	atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true, atom.Tr: true,
	atom.Ul: true,
}

// PlainText renders the visible text of n for a terminal. Block elements
// start new lines, list items get a bullet and hidden subtrees are skipped.
// Elements for which skip returns true are left out with their subtree.
func PlainText(n tabs.Node, skip func(tabs.Node) bool) string {
	h := node(n)
	if h == nil {
		return ""
	}
	var w textWriter
	w.node(h, skip, false)
	return strings.TrimSpace(w.String())
}

type textWriter struct {
	strings.Builder
	pendingSpace bool
}

func (w *textWriter) newline() {
	s := w.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		w.pendingSpace = false
		return
	}
	if strings.HasSuffix(s, "\n") {
		w.WriteString("\n")
	} else {
		w.WriteString("\n\n")
	}
	w.pendingSpace = false
}

func (w *textWriter) text(s string, pre bool) {
	if pre {
		w.WriteString(s)
		return
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			w.pendingSpace = true
		}
		return
	}
	if w.pendingSpace || startsWithSpace(s) {
		cur := w.String()
		if cur != "" && !strings.HasSuffix(cur, "\n") && !strings.HasSuffix(cur, " ") {
			w.WriteString(" ")
		}
	}
	w.WriteString(strings.Join(fields, " "))
	w.pendingSpace = endsWithSpace(s)
}

func (w *textWriter) node(h *html.Node, skip func(tabs.Node) bool, pre bool) {
	switch h.Type {
	case html.TextNode:
		w.text(h.Data, pre)
		return
	case html.ElementNode:
		if hasAttr(h, "hidden") || (skip != nil && skip(h)) {
			return
		}
		switch h.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Template:
			return
		case atom.Br:
			w.WriteString("\n")
			w.pendingSpace = false
			return
		case atom.Pre:
			pre = true
		}
	}

	if h.Type == html.ElementNode && h.DataAtom == atom.Li {
		w.lineStart()
		w.WriteString("• ")
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			w.node(c, skip, pre)
		}
		w.lineStart()
		return
	}

	block := h.Type == html.ElementNode && blockElements[h.DataAtom]
	if block {
		w.newline()
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		w.node(c, skip, pre)
	}
	if block {
		w.newline()
	}
}

func (w *textWriter) lineStart() {
	s := w.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		w.WriteString("\n")
	}
	w.pendingSpace = false
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t\r\n") != s
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRight(s, " \t\r\n") != s
}
