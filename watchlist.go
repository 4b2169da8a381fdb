package briefing

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyTicker is returned when a ticker is blank after trimming.
	ErrEmptyTicker = errors.New("ticker is empty")

	// ErrDuplicateTicker is returned when a ticker is already watched.
	ErrDuplicateTicker = errors.New("ticker already in watchlist")
)

// Watchlist is an ordered set of upper-case ticker symbols.
type Watchlist []string

// DefaultWatchlist returns the tickers a new dashboard starts with.
func DefaultWatchlist() Watchlist {
	return Watchlist{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
}

// NormalizeTicker trims surrounding whitespace and upper-cases ticker.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// NewWatchlist builds a watchlist from tickers, normalizing each one and
// silently dropping blanks and repeats. Order of first appearance is kept.
func NewWatchlist(tickers ...string) Watchlist {
	var w Watchlist
	for _, ticker := range tickers {
		if next, err := w.Add(ticker); err == nil {
			w = next
		}
	}
	return w
}

// Contains reports whether the normalized ticker is watched.
func (w Watchlist) Contains(ticker string) bool {
	ticker = NormalizeTicker(ticker)
	for _, t := range w {
		if t == ticker {
			return true
		}
	}
	return false
}

// Add returns a new watchlist with ticker appended. The receiver is not
// modified.
func (w Watchlist) Add(ticker string) (Watchlist, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return w, ErrEmptyTicker
	}
	if w.Contains(ticker) {
		return w, ErrDuplicateTicker
	}

	next := make(Watchlist, len(w), len(w)+1)
	copy(next, w)
	return append(next, ticker), nil
}

// Remove returns a new watchlist without ticker. Removing a ticker that is
// not watched is a no-op.
func (w Watchlist) Remove(ticker string) Watchlist {
	ticker = NormalizeTicker(ticker)
	next := make(Watchlist, 0, len(w))
	for _, t := range w {
		if t != ticker {
			next = append(next, t)
		}
	}
	return next
}
