package briefing

import (
	"context"
	"errors"
)

// ErrEntryNotFound is returned by stores when no entry has the given ID.
var ErrEntryNotFound = errors.New("entry not found")

// HistoryStore defines the persistence operations History needs.
// Any database can implement this interface to back a report history.
//
// Implementations must be safe for concurrent use.
type HistoryStore interface {
	// Add saves a new entry. IDs are assigned by the caller.
	Add(ctx context.Context, entry *Entry) error

	// List returns at most limit entries, newest first.
	// A limit of zero or less means no limit.
	List(ctx context.Context, limit int) ([]*Entry, error)

	// Get returns the entry with the given ID, or ErrEntryNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Remove deletes the entry with the given ID, or returns ErrEntryNotFound.
	Remove(ctx context.Context, id string) error

	// Trim deletes everything except the keep newest entries.
	Trim(ctx context.Context, keep int) error
}
