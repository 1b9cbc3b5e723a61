// Package dom provides an in-memory HTML document that tab groups can be
// built on, backed by golang.org/x/net/html.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

var _ tabs.Document = (*Document)(nil)

// Document is a parsed HTML tree with a focus pointer.
type Document struct {
	root   *html.Node
	active *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// New returns an empty document with a head and a body.
func New() *Document {
	d, _ := ParseString("<!DOCTYPE html><html><head></head><body></body></html>")
	return d
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// RenderNode renders one element and its subtree.
func RenderNode(n tabs.Node) string {
	h := node(n)
	if h == nil {
		return ""
	}
	var buf bytes.Buffer
	_ = html.Render(&buf, h)
	return buf.String()
}

// Body returns the body element.
func (d *Document) Body() tabs.Node {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	return wrap(body)
}

// Title returns the text of the title element.
func (d *Document) Title() string {
	var title string
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Title {
			title = strings.TrimSpace(textOf(n))
			return false
		}
		return true
	})
	return title
}

// Groups returns every element carrying attr, in document order.
func (d *Document) Groups(attr string) []tabs.Node {
	var out []tabs.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasAttr(n, attr) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (d *Document) Children(parent tabs.Node) []tabs.Node {
	p := node(parent)
	if p == nil {
		return nil
	}
	var out []tabs.Node
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func (d *Document) Query(root tabs.Node, attr string) tabs.Node {
	r := node(root)
	if r == nil {
		return nil
	}
	var found *html.Node
	for c := r.FirstChild; c != nil && found == nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && hasAttr(n, attr) {
				found = n
				return false
			}
			return true
		})
	}
	return wrap(found)
}

func (d *Document) ElementByID(id string) tabs.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attrOf(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return wrap(found)
}

func (d *Document) CreateElement(tag string) tabs.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func (d *Document) Attr(n tabs.Node, name string) (string, bool) {
	h := node(n)
	if h == nil {
		return "", false
	}
	return attrOf(h, name)
}

func (d *Document) SetAttr(n tabs.Node, name, value string) {
	h := node(n)
	if h == nil {
		return
	}
	for i := range h.Attr {
		if h.Attr[i].Namespace == "" && h.Attr[i].Key == name {
			h.Attr[i].Val = value
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: name, Val: value})
}

func (d *Document) RemoveAttr(n tabs.Node, name string) {
	h := node(n)
	if h == nil {
		return
	}
	kept := h.Attr[:0]
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	h.Attr = kept
}

func (d *Document) AddClass(n tabs.Node, class string) {
	if class == "" || HasClass(n, class) {
		return
	}
	v, _ := d.Attr(n, "class")
	d.SetAttr(n, "class", strings.TrimSpace(v+" "+class))
}

func (d *Document) RemoveClass(n tabs.Node, class string) {
	v, ok := d.Attr(n, "class")
	if !ok {
		return
	}
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		d.RemoveAttr(n, "class")
		return
	}
	d.SetAttr(n, "class", strings.Join(kept, " "))
}

// HasClass reports whether n carries class.
func HasClass(n tabs.Node, class string) bool {
	h := node(n)
	if h == nil {
		return false
	}
	v, _ := attrOf(h, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func (d *Document) TextContent(n tabs.Node) string {
	h := node(n)
	if h == nil {
		return ""
	}
	return textOf(h)
}

func (d *Document) SetText(n tabs.Node, text string) {
	h := node(n)
	if h == nil {
		return
	}
	for c := h.FirstChild; c != nil; {
		next := c.NextSibling
		h.RemoveChild(c)
		c = next
	}
	if d.active != nil && !attached(d.active, d.root) {
		d.active = nil
	}
	if text != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (d *Document) AppendChild(parent, child tabs.Node) {
	p, c := node(parent), node(child)
	if p == nil || c == nil {
		return
	}
	detach(c)
	p.AppendChild(c)
}

func (d *Document) PrependChild(parent, child tabs.Node) {
	p, c := node(parent), node(child)
	if p == nil || c == nil {
		return
	}
	detach(c)
	if p.FirstChild == nil {
		p.AppendChild(c)
		return
	}
	p.InsertBefore(c, p.FirstChild)
}

func (d *Document) Remove(n tabs.Node) {
	h := node(n)
	if h == nil {
		return
	}
	detach(h)
	if d.active != nil && (d.active == h || contains(h, d.active)) {
		d.active = nil
	}
}

func (d *Document) Contains(ancestor, n tabs.Node) bool {
	a, h := node(ancestor), node(n)
	if a == nil || h == nil {
		return false
	}
	return contains(a, h)
}

// Node unwraps a handle returned by the document.
func Node(n tabs.Node) *html.Node {
	return node(n)
}

func node(n tabs.Node) *html.Node {
	h, _ := n.(*html.Node)
	return h
}

func wrap(h *html.Node) tabs.Node {
	if h == nil {
		return nil
	}
	return h
}

func detach(h *html.Node) {
	if h.Parent != nil {
		h.Parent.RemoveChild(h)
	}
}

func contains(a, h *html.Node) bool {
	for p := h; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}

func attached(h, root *html.Node) bool {
	return contains(root, h)
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attrOf(h *html.Node, name string) (string, bool) {
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(h *html.Node, name string) bool {
	_, ok := attrOf(h, name)
	return ok
}

func textOf(h *html.Node) string {
	var b strings.Builder
	walk(h, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}
