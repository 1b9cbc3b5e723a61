package dom

import (
	"sort"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() tabs.Node {
	if d.active != nil && !attached(d.active, d.root) {
		d.active = nil
	}
	return wrap(d.active)
}

// Focus moves focus to n when it can take focus.
func (d *Document) Focus(n tabs.Node) {
	h := node(n)
	if h == nil || !d.CanFocus(h) {
		return
	}
	d.active = h
}

// Blur drops focus when n holds it.
func (d *Document) Blur(n tabs.Node) {
	if h := node(n); h != nil && d.active == h {
		d.active = nil
	}
}

// CanFocus reports whether n is attached, rendered, enabled and either
// natively focusable or given a tabindex.
func (d *Document) CanFocus(n tabs.Node) bool {
	h := node(n)
	if h == nil || h.Type != html.ElementNode || !attached(h, d.root) {
		return false
	}
	if hiddenWithin(h) {
		return false
	}
	if nativeControl(h) && hasAttr(h, "disabled") {
		return false
	}
	if _, ok := tabIndex(h); ok {
		return true
	}
	return nativelyFocusable(h)
}

// Focusables returns the sequential focus order: positive tabindex values
// ascending, then tabindex 0 and native controls in document order.
func (d *Document) Focusables() []tabs.Node {
	type stop struct {
		n     *html.Node
		order int
		pos   int
	}
	var stops []stop
	pos := 0
	visit(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if hasAttr(n, "hidden") {
			return false
		}
		if !d.CanFocus(n) {
			return true
		}
		ti, ok := tabIndex(n)
		if !ok {
			ti = 0
		}
		if ti >= 0 {
			stops = append(stops, stop{n: n, order: ti, pos: pos})
			pos++
		}
		return true
	})

	sort.SliceStable(stops, func(i, j int) bool {
		a, b := stops[i].order, stops[j].order
		if a == 0 || b == 0 {
			return a != 0 && b == 0
		}
		return a < b
	})

	out := make([]tabs.Node, len(stops))
	for i, s := range stops {
		out[i] = s.n
	}
	return out
}

// NextFocusable returns the stop after from in sequential focus order, or
// the one before it when backward is set. The order wraps. When from is not
// a stop itself, the search starts from its position in the document.
func (d *Document) NextFocusable(from tabs.Node, backward bool) tabs.Node {
	stops := d.Focusables()
	if len(stops) == 0 {
		return nil
	}
	for i, s := range stops {
		if s != from {
			continue
		}
		if backward {
			return stops[(i-1+len(stops))%len(stops)]
		}
		return stops[(i+1)%len(stops)]
	}

	order := d.documentOrder()
	at, ok := order[node(from)]
	if !ok {
		if backward {
			return stops[len(stops)-1]
		}
		return stops[0]
	}
	if backward {
		for i := len(stops) - 1; i >= 0; i-- {
			if order[node(stops[i])] < at {
				return stops[i]
			}
		}
		return stops[len(stops)-1]
	}
	for _, s := range stops {
		if order[node(s)] > at {
			return s
		}
	}
	return stops[0]
}

func (d *Document) documentOrder() map[*html.Node]int {
	order := make(map[*html.Node]int)
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			order[n] = len(order)
		}
		return true
	})
	return order
}

// visit walks n depth first. Returning false from fn skips the children of
// the node it was called with; the walk goes on with its siblings.
func visit(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c, fn)
	}
}

// Hidden reports whether n or one of its ancestors carries hidden.
func Hidden(n tabs.Node) bool {
	h := node(n)
	return h != nil && hiddenWithin(h)
}

func hiddenWithin(h *html.Node) bool {
	for p := h; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && hasAttr(p, "hidden") {
			return true
		}
	}
	return false
}

func tabIndex(h *html.Node) (int, bool) {
	v, ok := attrOf(h, "tabindex")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

func nativeControl(h *html.Node) bool {
	switch h.DataAtom {
	case atom.Button, atom.Input, atom.Select, atom.Textarea:
		return true
	}
	return false
}

func nativelyFocusable(h *html.Node) bool {
	if nativeControl(h) {
		return true
	}
	return h.DataAtom == atom.A && hasAttr(h, "href")
}
