// Package location provides in-memory implementations of the fragment
// capability tab groups read and write.
package location

import (
	"strings"
	"sync"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

var (
	_ tabs.Location     = (*Memory)(nil)
	_ tabs.HashReplacer = (*Memory)(nil)
	_ tabs.Location     = AssignOnly{}
)

// Memory holds a fragment and the history entries created by assignments.
type Memory struct {
	mu      sync.Mutex
	hash    string
	history []string
	onWrite func(hash string, replaced bool)
}

// NewMemory returns a location whose fragment starts as hash.
func NewMemory(hash string) *Memory {
	hash = Normalize(hash)
	return &Memory{hash: hash, history: []string{hash}}
}

// OnWrite registers fn to run after every fragment write.
func (m *Memory) OnWrite(fn func(hash string, replaced bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onWrite = fn
}

func (m *Memory) Hash() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hash
}

// AssignHash sets the fragment and pushes a history entry.
func (m *Memory) AssignHash(hash string) {
	hash = Normalize(hash)
	m.mu.Lock()
	m.hash = hash
	m.history = append(m.history, hash)
	fn := m.onWrite
	m.mu.Unlock()
	if fn != nil {
		fn(hash, false)
	}
}

// ReplaceHash rewrites the fragment and the current history entry.
func (m *Memory) ReplaceHash(hash string) {
	hash = Normalize(hash)
	m.mu.Lock()
	m.hash = hash
	if len(m.history) == 0 {
		m.history = append(m.history, hash)
	} else {
		m.history[len(m.history)-1] = hash
	}
	fn := m.onWrite
	m.mu.Unlock()
	if fn != nil {
		fn(hash, true)
	}
}

// History returns the fragment of every history entry, oldest first.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// AssignOnly hides any in-place replacement support of the wrapped
// location, so every write becomes an assignment.
type AssignOnly struct {
	tabs.Location
}

// Normalize strips a leading '#' and surrounding space.
func Normalize(hash string) string {
	return strings.TrimPrefix(strings.TrimSpace(hash), "#")
}
