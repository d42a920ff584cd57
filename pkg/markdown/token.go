// Package markdown implements a streaming, single-pass markdown tokenizer.
// Lines are fed one at a time and tokens are emitted through a callback as
// they are recognized, so arbitrarily large documents parse in bounded
// memory. Malformed constructs always degrade to literal text; the
// tokenizer never fails on any input.
package markdown

// Kind classifies a token emitted by the tokenizer.
type Kind uint8

const (
	KindText Kind = iota // plain text fragment

	KindHeaderStart // header begins; level in Token.Level (1-6)
	KindHeaderEnd
	KindBoldStart // ** or __
	KindBoldEnd
	KindItalicStart // * or _
	KindItalicEnd
	KindBoldItalicStart // *** or ___
	KindBoldItalicEnd
	KindCodeSpan // inline `code`; text in Token.Text
	KindLinkText // [text] portion of a link
	KindLinkURL  // (url) portion of a link

	KindListItem    // bullet list item; Token.Level = nesting depth (0-based)
	KindOrderedItem // ordered list item; Token.Level = nesting, number in Text
	KindBlockquoteStart
	KindBlockquoteEnd
	KindHorizontalRule
	KindParagraphBreak // blank line / paragraph boundary
	KindLineBreak      // end of a non-blank line within a block
	KindHardLineBreak  // forced break (2+ trailing spaces)

	KindCodeBlockStart
	KindCodeBlockEnd
	KindCodeBlockLine // verbatim line inside a fenced block
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	names := [...]string{
		KindText:            "text",
		KindHeaderStart:     "header-start",
		KindHeaderEnd:       "header-end",
		KindBoldStart:       "bold-start",
		KindBoldEnd:         "bold-end",
		KindItalicStart:     "italic-start",
		KindItalicEnd:       "italic-end",
		KindBoldItalicStart: "bold-italic-start",
		KindBoldItalicEnd:   "bold-italic-end",
		KindCodeSpan:        "code-span",
		KindLinkText:        "link-text",
		KindLinkURL:         "link-url",
		KindListItem:        "list-item",
		KindOrderedItem:     "ordered-item",
		KindBlockquoteStart: "blockquote-start",
		KindBlockquoteEnd:   "blockquote-end",
		KindHorizontalRule:  "horizontal-rule",
		KindParagraphBreak:  "paragraph-break",
		KindLineBreak:       "line-break",
		KindHardLineBreak:   "hard-line-break",
		KindCodeBlockStart:  "code-block-start",
		KindCodeBlockEnd:    "code-block-end",
		KindCodeBlockLine:   "code-block-line",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Token is a tagged value describing one structural or inline event.
// Text borrows from the input line passed to FeedLine and is only valid
// for the duration of the emit callback; consumers that keep it must copy.
type Token struct {
	Kind  Kind
	Text  string
	Level int
}

// EmitFunc receives tokens as the tokenizer produces them.
type EmitFunc func(Token)
