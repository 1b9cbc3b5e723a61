package tabs

import "github.com/google/uuid"

// Node is an element handle owned by a Document. Handles must be comparable
// and a missing element is always the untyped nil.
type Node = any

// Document is the element tree a Group projects its state onto.
type Document interface {
	// Children returns the element children of parent in document order.
	Children(parent Node) []Node
	// Query returns the first descendant of root carrying attr, or nil.
	Query(root Node, attr string) Node
	ElementByID(id string) Node
	CreateElement(tag string) Node

	Attr(n Node, name string) (string, bool)
	SetAttr(n Node, name, value string)
	RemoveAttr(n Node, name string)
	AddClass(n Node, class string)
	RemoveClass(n Node, class string)
	TextContent(n Node) string
	SetText(n Node, text string)

	// AppendChild and PrependChild detach child from its current parent first.
	AppendChild(parent, child Node)
	PrependChild(parent, child Node)
	Remove(n Node)
	Contains(ancestor, n Node) bool

	Focus(n Node)
	Blur(n Node)
	CanFocus(n Node) bool
}

// Location exposes the URL fragment, without the leading '#'.
type Location interface {
	Hash() string
	// AssignHash sets the fragment and records a new history entry.
	AssignHash(hash string)
}

// HashReplacer is implemented by locations that can rewrite the fragment
// without adding a history entry. Groups prefer it when available.
type HashReplacer interface {
	ReplaceHash(hash string)
}

// Host bundles the capabilities a Group needs from its environment.
type Host struct {
	Doc Document
	// Location may be nil, which disables fragment reads and writes.
	Location Location
	// NewID generates an id from a prefix. Defaults to NewID.
	NewID func(prefix string) string
}

// NewID returns prefix followed by a short random suffix.
func NewID(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// Logger receives trace output from a Group.
type Logger interface {
	Log(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Log(string, ...interface{}) {}
