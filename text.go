package briefing

import (
	"regexp"
	"strings"
)

// boldPattern matches one "**...**" pair. The capture is non-greedy so that
// several bold runs on a line resolve independently.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// splitLines splits a document on newlines. A "\r" left over from a CRLF
// separator is dropped. An empty document has no lines.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitBold splits text around bold delimiter pairs. Even indexes of the
// result hold the text outside the pairs, odd indexes the text inside them.
func splitBold(text string) []string {
	matches := boldPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return []string{text}
	}

	parts := make([]string, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		parts = append(parts, text[last:m[0]], text[m[2]:m[3]])
		last = m[1]
	}
	return append(parts, text[last:])
}

// StripBold returns text with every matched "**" pair removed. It is the
// plain-text projection of ParseInline.
func StripBold(text string) string {
	return boldPattern.ReplaceAllString(text, "$1")
}
