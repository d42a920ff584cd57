package markdown

import "strings"

// Tokenizer is a per-line state machine. Two orthogonal state axes
// persist across lines: whether the cursor is inside a fenced code block,
// and the current blockquote nesting depth.
type Tokenizer struct {
	emit EmitFunc

	inCodeBlock   bool
	quoteDepth    int
	lastLineBlank bool
}

// NewTokenizer returns a tokenizer that reports tokens through emit.
func NewTokenizer(emit EmitFunc) *Tokenizer {
	return &Tokenizer{emit: emit}
}

func (t *Tokenizer) emitSimple(kind Kind) {
	t.emit(Token{Kind: kind})
}

// FeedLine parses exactly one logical line. A trailing CR or LF is
// tolerated and stripped.
func (t *Tokenizer) FeedLine(line string) {
	line = strings.TrimRight(line, "\r\n")

	if t.inCodeBlock {
		if isCodeFence(line) {
			t.emitSimple(KindCodeBlockEnd)
			t.inCodeBlock = false
		} else {
			t.emit(Token{Kind: KindCodeBlockLine, Text: line})
		}
		return
	}

	if isCodeFence(line) {
		t.emitSimple(KindCodeBlockStart)
		t.inCodeBlock = true
		t.lastLineBlank = false
		return
	}

	content, quoteDepth := stripBlockquote(line)
	for t.quoteDepth < quoteDepth {
		t.emitSimple(KindBlockquoteStart)
		t.quoteDepth++
	}
	for t.quoteDepth > quoteDepth {
		t.emitSimple(KindBlockquoteEnd)
		t.quoteDepth--
	}

	// Blank line: a paragraph break, but only on the first of a run.
	if skipSpaces(content) == len(content) {
		if !t.lastLineBlank {
			t.emitSimple(KindParagraphBreak)
		}
		t.lastLineBlank = true
		return
	}
	t.lastLineBlank = false

	if isHorizontalRule(content) {
		t.emitSimple(KindHorizontalRule)
		return
	}

	if level := atxHeaderLevel(content); level > 0 {
		text := content
		for len(text) > 0 && text[0] == '#' {
			text = text[1:]
		}
		for len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
		text = stripTrailingHashes(text)

		t.emit(Token{Kind: KindHeaderStart, Level: level})
		t.parseInline(text)
		t.emit(Token{Kind: KindHeaderEnd, Level: level})
		return
	}

	if item, ok := parseListItem(content); ok {
		if item.ordered {
			t.emit(Token{Kind: KindOrderedItem, Text: item.number, Level: item.indent})
		} else {
			t.emit(Token{Kind: KindListItem, Level: item.indent})
		}
		t.parseInline(item.content)
		t.emitSimple(KindLineBreak)
		return
	}

	// Plain content line. Two or more trailing spaces force a hard break.
	inline, hardBreak := checkHardBreak(content)
	t.parseInline(inline)
	if hardBreak {
		t.emitSimple(KindHardLineBreak)
	} else {
		t.emitSimple(KindLineBreak)
	}
}

// Finish closes any still-open fence, then any remaining blockquote
// levels. Call once after the last line.
func (t *Tokenizer) Finish() {
	if t.inCodeBlock {
		t.emitSimple(KindCodeBlockEnd)
		t.inCodeBlock = false
	}
	for t.quoteDepth > 0 {
		t.emitSimple(KindBlockquoteEnd)
		t.quoteDepth--
	}
}

// skipSpaces returns the index of the first byte that is not a space or tab.
func skipSpaces(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// isCodeFence reports whether the line is a fence delimiter: 3+ identical
// backticks or tildes after optional leading whitespace.
func isCodeFence(line string) bool {
	i := skipSpaces(line)
	if i >= len(line) {
		return false
	}
	ch := line[i]
	if ch != '`' && ch != '~' {
		return false
	}
	count := 0
	for i < len(line) && line[i] == ch {
		count++
		i++
	}
	return count >= 3
}

// isHorizontalRule reports whether the line is 3+ of the same character
// (-, *, _), optionally interspersed with whitespace, and nothing else.
func isHorizontalRule(line string) bool {
	i := skipSpaces(line)
	if i >= len(line) {
		return false
	}
	ch := line[i]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	count := 0
	for ; i < len(line); i++ {
		switch line[i] {
		case ch:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// atxHeaderLevel returns the header level (1-6) for an ATX header line,
// or 0 when the line is not a header. The marker must be followed by
// whitespace or end of line.
func atxHeaderLevel(line string) int {
	i := skipSpaces(line)
	if i >= len(line) || line[i] != '#' {
		return 0
	}
	level := 0
	for i < len(line) && line[i] == '#' && level < 6 {
		level++
		i++
	}
	if i < len(line) && line[i] != ' ' && line[i] != '\t' {
		return 0
	}
	return level
}

// stripTrailingHashes removes closing # runs and the whitespace before
// them from header text.
func stripTrailingHashes(text string) string {
	end := len(text)
	for end > 0 && text[end-1] == '#' {
		end--
	}
	for end > 0 && (text[end-1] == ' ' || text[end-1] == '\t') {
		end--
	}
	return text[:end]
}

// checkHardBreak detects a hard line break (2+ trailing spaces) and
// returns the text with the trailing spaces removed.
func checkHardBreak(text string) (string, bool) {
	if len(text) < 2 || text[len(text)-1] != ' ' || text[len(text)-2] != ' ' {
		return text, false
	}
	return strings.TrimRight(text, " "), true
}

// listItem describes a recognized list marker.
type listItem struct {
	ordered bool
	indent  int    // nesting depth, one level per two leading spaces
	number  string // digits of an ordered marker
	content string // text after the marker
}

// parseListItem recognizes unordered (-, *, + plus space) and ordered
// (digits plus . or ) plus space) list markers.
func parseListItem(line string) (listItem, bool) {
	i := skipSpaces(line)
	item := listItem{indent: i / 2}

	if i >= len(line) {
		return listItem{}, false
	}

	if (line[i] == '-' || line[i] == '*' || line[i] == '+') && i+1 < len(line) && line[i+1] == ' ' {
		item.content = line[i+2:]
		return item, true
	}

	numStart := i
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > numStart && i+1 < len(line) && (line[i] == '.' || line[i] == ')') && line[i+1] == ' ' {
		item.ordered = true
		item.number = line[numStart:i]
		item.content = line[i+2:]
		return item, true
	}

	return listItem{}, false
}

// stripBlockquote removes leading >-quote markers, one nesting level per
// single '>', consuming at most one following space per level. Returns
// the remaining content and the computed depth.
func stripBlockquote(line string) (string, int) {
	depth := 0
	i := 0
	for i < len(line) {
		j := skipSpaces(line[i:]) + i
		if j >= len(line) || line[j] != '>' {
			break
		}
		depth++
		j++
		if j < len(line) && line[j] == ' ' {
			j++
		}
		i = j
	}
	return line[i:], depth
}
