package briefing

import (
	"strings"
	"testing"
	"time"
)

func TestEntry_Preview(t *testing.T) {
	t.Run("strips markdown punctuation", func(t *testing.T) {
		entry := &Entry{Text: "### Morning Briefing\n**Date:** Feb 9\n---"}
		want := " Morning Briefing\nDate: Feb 9\n..."
		if got := entry.Preview(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("truncates long text", func(t *testing.T) {
		entry := &Entry{Text: strings.Repeat("a", 300)}
		want := strings.Repeat("a", 120) + "..."
		if got := entry.Preview(); got != want {
			t.Errorf("expected %d characters plus ellipsis, got %q", 120, got)
		}
	})

	t.Run("does not split a rune", func(t *testing.T) {
		entry := &Entry{Text: strings.Repeat("a", 119) + "é and more"}
		got := entry.Preview()
		if want := strings.Repeat("a", 119) + "..."; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestEntry_Matches(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Date(2026, 2, 9, 7, 0, 0, 0, time.UTC),
		Watchlist: []string{"AAPL", "GOOGL"},
	}

	tests := []struct {
		filter string
		want   bool
	}{
		{"", true},
		{"aapl", true},
		{"GOO", true},
		{"2026-02-09", true},
		{"2/9/2026", true},
		{"2026", true},
		{"TSLA", false},
		{"2026-02-10", false},
	}

	for _, tt := range tests {
		if got := entry.Matches(tt.filter); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}
