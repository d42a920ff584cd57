package markdown

// parseInline scans a text span for inline constructs: `code`,
// [text](url) links, and */_ emphasis runs of length 1-3 mapped to
// italic, bold, and bold-italic. Emphasis interiors parse recursively.
// Every malformed construct falls back to literal text.
func (t *Tokenizer) parseInline(text string) {
	i := 0

	for i < len(text) {
		switch text[i] {
		case '`':
			end := i + 1
			for end < len(text) && text[end] != '`' {
				end++
			}
			if end < len(text) {
				t.emit(Token{Kind: KindCodeSpan, Text: text[i+1 : end]})
				i = end + 1
				continue
			}
			// No closing backtick.
			t.emit(Token{Kind: KindText, Text: text[i : i+1]})
			i++

		case '[':
			if next, ok := t.parseLink(text, i); ok {
				i = next
				continue
			}
			// Not a valid link, '[' is literal.
			t.emit(Token{Kind: KindText, Text: text[i : i+1]})
			i++

		case '*', '_':
			i = t.parseEmphasis(text, i)

		default:
			start := i
			for i < len(text) && !isInlineSpecial(text[i]) {
				i++
			}
			t.emit(Token{Kind: KindText, Text: text[start:i]})
		}
	}
}

func isInlineSpecial(b byte) bool {
	return b == '*' || b == '_' || b == '`' || b == '['
}

// parseLink recognizes [text](url) starting at the '[' at position i.
// Returns the position after the link and true on success.
func (t *Tokenizer) parseLink(text string, i int) (int, bool) {
	bracketEnd := i + 1
	for bracketEnd < len(text) && text[bracketEnd] != ']' {
		bracketEnd++
	}
	if bracketEnd+1 >= len(text) || text[bracketEnd+1] != '(' {
		return 0, false
	}

	parenEnd := bracketEnd + 2
	for parenEnd < len(text) && text[parenEnd] != ')' {
		parenEnd++
	}
	if parenEnd >= len(text) {
		return 0, false
	}

	t.emit(Token{Kind: KindLinkText, Text: text[i+1 : bracketEnd]})
	t.emit(Token{Kind: KindLinkURL, Text: text[bracketEnd+2 : parenEnd]})
	return parenEnd + 1, true
}

// parseEmphasis handles a run of * or _ starting at position i. The run
// length (capped at 3) selects italic, bold, or bold-italic; the first
// closing run of the same marker and length ends the span. An unmatched
// opening run is emitted as literal text.
func (t *Tokenizer) parseEmphasis(text string, i int) int {
	marker := text[i]
	start := i
	count := 0
	for i < len(text) && text[i] == marker && count < 3 {
		count++
		i++
	}

	var opening, closing Kind
	switch count {
	case 3:
		opening, closing = KindBoldItalicStart, KindBoldItalicEnd
	case 2:
		opening, closing = KindBoldStart, KindBoldEnd
	default:
		opening, closing = KindItalicStart, KindItalicEnd
	}

	for end := i; end+count-1 < len(text); end++ {
		if !markerRunAt(text, end, marker, count) {
			continue
		}
		t.emitSimple(opening)
		t.parseInline(text[i:end])
		t.emitSimple(closing)
		return end + count
	}

	// No matching closing run.
	t.emit(Token{Kind: KindText, Text: text[start:i]})
	return i
}

// markerRunAt reports whether count copies of marker start at position i.
func markerRunAt(text string, i int, marker byte, count int) bool {
	for k := 0; k < count; k++ {
		if text[i+k] != marker {
			return false
		}
	}
	return true
}
