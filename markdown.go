package briefing

import (
	"regexp"
	"strings"
)

// BlockKind identifies which variant a Block holds.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	Rule
	ListItem
	Blank
)

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Rule:
		return "rule"
	case ListItem:
		return "list-item"
	case Blank:
		return "blank"
	default:
		return "unknown"
	}
}

// InlineSpan is a run of text within a block, either plain or bold.
type InlineSpan struct {
	Text string
	Bold bool
}

// Block is one classified line of a document.
//
// Level is set for headings (1-4). Ordered and Indent (0 or 1) are set for
// list items. Content is nil for rules and blank lines.
type Block struct {
	Kind    BlockKind
	Level   int
	Ordered bool
	Indent  int
	Content []InlineSpan
}

// Text returns the visible text of the block with bold markers removed.
func (b Block) Text() string {
	var sb strings.Builder
	for _, span := range b.Content {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

var (
	headingPrefixes = [...]string{"# ", "## ", "### ", "#### "}
	orderedPrefix   = regexp.MustCompile(`^\d+\.\s`)
	nestedBullet    = regexp.MustCompile(`^\s*-\s*`)
)

// RenderMarkdown classifies every line of doc into a Block. The result has
// exactly one block per line, in input order. An empty document has no
// lines and yields no blocks; any other document has one more line than it
// has newlines. Lines that match no rule become paragraphs;
// RenderMarkdown never fails.
func RenderMarkdown(doc string) []Block {
	lines := splitLines(doc)
	if lines == nil {
		return nil
	}
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = classifyLine(line)
	}
	return blocks
}

// classifyLine applies the line rules in order. The order matters: deeper
// headings are tested before shallower ones, and indented bullets before
// top-level ones.
func classifyLine(line string) Block {
	for level := len(headingPrefixes); level >= 1; level-- {
		if rest, ok := strings.CutPrefix(line, headingPrefixes[level-1]); ok {
			return Block{Kind: Heading, Level: level, Content: ParseInline(rest)}
		}
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "---" {
		return Block{Kind: Rule}
	}

	if strings.HasPrefix(line, "   - ") || strings.HasPrefix(line, "  - ") {
		rest := nestedBullet.ReplaceAllString(line, "")
		return Block{Kind: ListItem, Indent: 1, Content: ParseInline(rest)}
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Block{Kind: ListItem, Content: ParseInline(line[2:])}
	}

	if loc := orderedPrefix.FindStringIndex(line); loc != nil {
		return Block{Kind: ListItem, Ordered: true, Content: ParseInline(line[loc[1]:])}
	}

	if trimmed == "" {
		return Block{Kind: Blank}
	}

	return Block{Kind: Paragraph, Content: ParseInline(line)}
}

// ParseInline splits text into plain and bold spans around "**" pairs.
// Text without a complete pair is a single plain span. An unmatched "**"
// stays in the plain text. Empty plain runs between pairs are omitted;
// an empty pair ("****") yields an empty bold span.
func ParseInline(text string) []InlineSpan {
	parts := splitBold(text)
	if len(parts) == 1 {
		return []InlineSpan{{Text: text}}
	}

	spans := make([]InlineSpan, 0, len(parts))
	for i, part := range parts {
		bold := i%2 == 1
		if !bold && part == "" {
			continue
		}
		spans = append(spans, InlineSpan{Text: part, Bold: bold})
	}
	return spans
}
