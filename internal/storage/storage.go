// Package storage defines the Journal interface: where a run's transcript
// goes. The runner only knows this interface, so tests can hand it an
// in-memory SQLite journal or any other implementation.
package storage

import "github.com/aanand-mishra/oops-exercises/internal/types"

// Journal records transcript entries in the order they happen.
type Journal interface {
	// Append validates and stores entry, returning its generated ID.
	Append(entry types.Entry) (int64, error)

	// Entries returns every entry of one run in insertion order.
	// Returns an empty slice (not nil) if the run has no entries.
	Entries(runID string) ([]types.Entry, error)

	// Close releases the underlying database.
	Close() error
}
