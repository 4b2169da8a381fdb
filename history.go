package briefing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyReport is returned by Record when the report text is blank.
var ErrEmptyReport = errors.New("report text is empty")

// Config holds the configuration for a History.
type Config struct {
	// Store is the required persistence layer.
	Store HistoryStore

	// Limit is how many entries are retained and listed.
	// Default: 50
	Limit int

	// Now returns the current time. Default: time.Now
	Now func() time.Time

	// OnError is called for failures that do not fail the calling
	// operation, such as trimming old entries after a successful record.
	// If OnError is not set, such errors are silently ignored.
	OnError func(ctx context.Context, err error)
}

// History keeps a bounded, newest-first log of analysis reports.
type History struct {
	store  HistoryStore
	config Config
}

// New creates a History with the given configuration.
// Returns an error if the configuration is invalid.
func New(config Config) (*History, error) {
	if config.Store == nil {
		return nil, errors.New("store is required")
	}

	// Set defaults
	if config.Limit <= 0 {
		config.Limit = 50
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &History{
		store:  config.Store,
		config: config,
	}, nil
}

// Record saves a report generated for watchlist and trims the history
// back to its limit. Tickers are normalized as by NewWatchlist.
func (h *History) Record(ctx context.Context, watchlist []string, text string) (*Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReport
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		Timestamp: h.config.Now().UTC(),
		Watchlist: NewWatchlist(watchlist...),
		Text:      text,
	}
	if err := h.store.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	// The entry is saved; a failed trim only delays cleanup.
	if err := h.store.Trim(ctx, h.config.Limit); err != nil {
		h.handleError(ctx, fmt.Errorf("failed to trim history: %w", err))
	}

	return entry, nil
}

// Recent returns up to Limit entries, newest first, that match filter.
// See Entry.Matches for the filter rules.
func (h *History) Recent(ctx context.Context, filter string) ([]*Entry, error) {
	entries, err := h.store.List(ctx, h.config.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if filter == "" {
		return entries, nil
	}

	var matched []*Entry
	for _, entry := range entries {
		if entry.Matches(filter) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Get returns the entry with the given ID.
func (h *History) Get(ctx context.Context, id string) (*Entry, error) {
	entry, err := h.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", id, err)
	}
	return entry, nil
}

// Remove deletes the entry with the given ID.
func (h *History) Remove(ctx context.Context, id string) error {
	if err := h.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove entry %s: %w", id, err)
	}
	return nil
}

// handleError calls the OnError handler if configured.
func (h *History) handleError(ctx context.Context, err error) {
	if h.config.OnError != nil {
		h.config.OnError(ctx, err)
	}
}
