package briefing

import (
	"strings"
	"time"
	"unicode/utf8"
)

// previewLength is how many bytes of report text a preview keeps.
const previewLength = 120

// Entry is one saved analysis report.
type Entry struct {
	// ID uniquely identifies the entry within its store.
	ID string

	// Timestamp is when the report was recorded.
	Timestamp time.Time

	// Watchlist holds the tickers the report was generated for.
	Watchlist []string

	// Text is the report body in the markdown subset RenderMarkdown reads.
	Text string
}

// Blocks renders the report body.
func (e *Entry) Blocks() []Block {
	return RenderMarkdown(e.Text)
}

// Preview returns a short plain-text teaser of the report: the leading
// bytes of Text with markdown punctuation ('#', '*', '-') removed and an
// ellipsis appended.
func (e *Entry) Preview() string {
	head := e.Text
	if len(head) > previewLength {
		cut := previewLength
		for cut > 0 && !utf8.RuneStart(head[cut]) {
			cut--
		}
		head = head[:cut]
	}
	head = strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '-':
			return -1
		}
		return r
	}, head)
	return head + "..."
}

// Matches reports whether the entry passes a history search filter. An
// empty filter matches everything. Otherwise the filter must appear in the
// recording date (as 2006-01-02 or 1/2/2006) or, ignoring case, in one of
// the watchlist tickers.
func (e *Entry) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	if strings.Contains(e.Timestamp.Format("2006-01-02"), filter) ||
		strings.Contains(e.Timestamp.Format("1/2/2006"), filter) {
		return true
	}
	needle := strings.ToLower(filter)
	for _, ticker := range e.Watchlist {
		if strings.Contains(strings.ToLower(ticker), needle) {
			return true
		}
	}
	return false
}
