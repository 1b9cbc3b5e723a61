package state

import (
	"strings"
	"sync"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

var (
	_ tabs.Location     = (*Location)(nil)
	_ tabs.HashReplacer = (*Location)(nil)
)

// Location is a fragment backed by a FragmentStore. Reads are served from
// memory; writes go through to the store.
type Location struct {
	store FragmentStore
	doc   string

	mu      sync.Mutex
	hash    string
	err     error
	onError func(hash string, err error)
}

// NewLocation returns the location of doc, starting from its stored
// fragment. A store error is returned together with a usable location.
func NewLocation(store FragmentStore, doc string) (*Location, error) {
	l := &Location{store: store, doc: doc}
	f, err := store.GetFragment(doc)
	if err != nil {
		return l, err
	}
	if f != nil {
		l.hash = f.Hash
	}
	return l, nil
}

func (l *Location) Hash() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hash
}

// AssignHash stores hash as a new history entry.
func (l *Location) AssignHash(hash string) {
	l.write(hash, l.store.AssignFragment)
}

// ReplaceHash stores hash in place of the current history entry.
func (l *Location) ReplaceHash(hash string) {
	l.write(hash, l.store.ReplaceFragment)
}

// OnError registers fn to run after every failed write.
func (l *Location) OnError(fn func(hash string, err error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onError = fn
}

func (l *Location) write(hash string, fn func(doc, hash string) error) {
	hash = strings.TrimPrefix(hash, "#")
	l.mu.Lock()
	l.hash = hash
	err := fn(l.doc, hash)
	l.err = err
	onError := l.onError
	l.mu.Unlock()

	if err != nil && onError != nil {
		onError(hash, err)
	}
}

// Err returns the error of the last write, if any.
func (l *Location) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
