package state

import "io"

// FragmentStore persists the fragment of each document.
type FragmentStore interface {
	GetFragment(doc string) (*Fragment, error)
	// AssignFragment stores hash and appends a history entry.
	AssignFragment(doc, hash string) error
	// ReplaceFragment stores hash and rewrites the latest history entry.
	ReplaceFragment(doc, hash string) error
	ListHistory(doc string, limit int) ([]HistoryEntry, error)
	ClearFragment(doc string) error
}

// Migrator handles database schema migrations.
type Migrator interface {
	// Migrate applies all pending schema migrations.
	Migrate() error
}

// StateStore defines the interface for state persistence.
type StateStore interface {
	io.Closer
	Migrator
	FragmentStore
}

var (
	_ StateStore    = (*DB)(nil)
	_ FragmentStore = (*DB)(nil)
)
