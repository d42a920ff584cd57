package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finch-reader/finch/pkg/markdown"
)

func TestTokenizer_Inline(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []markdown.Token
	}{
		{
			name: "bold and italic spans",
			line: "**bold** and *italic*",
			want: []markdown.Token{
				tok(markdown.KindBoldStart),
				text("bold"),
				tok(markdown.KindBoldEnd),
				text(" and "),
				tok(markdown.KindItalicStart),
				text("italic"),
				tok(markdown.KindItalicEnd),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "triple marker is bold italic",
			line: "***x***",
			want: []markdown.Token{
				tok(markdown.KindBoldItalicStart),
				text("x"),
				tok(markdown.KindBoldItalicEnd),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "underscore emphasis",
			line: "__strong__",
			want: []markdown.Token{
				tok(markdown.KindBoldStart),
				text("strong"),
				tok(markdown.KindBoldEnd),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "nested emphasis parses recursively",
			line: "**a *b* c**",
			want: []markdown.Token{
				tok(markdown.KindBoldStart),
				text("a "),
				tok(markdown.KindItalicStart),
				text("b"),
				tok(markdown.KindItalicEnd),
				text(" c"),
				tok(markdown.KindBoldEnd),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "unmatched marker is literal",
			line: "*abc",
			want: []markdown.Token{
				text("*"),
				text("abc"),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "code span",
			line: "run `go test` now",
			want: []markdown.Token{
				text("run "),
				{Kind: markdown.KindCodeSpan, Text: "go test"},
				text(" now"),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "emphasis inside code span stays literal",
			line: "`*x*`",
			want: []markdown.Token{
				{Kind: markdown.KindCodeSpan, Text: "*x*"},
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "unterminated code span is literal backtick",
			line: "a `b",
			want: []markdown.Token{
				text("a "),
				text("`"),
				text("b"),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "link emits text and url",
			line: "see [docs](https://example.com) here",
			want: []markdown.Token{
				text("see "),
				{Kind: markdown.KindLinkText, Text: "docs"},
				{Kind: markdown.KindLinkURL, Text: "https://example.com"},
				text(" here"),
				tok(markdown.KindLineBreak),
			},
		},
		{
			name: "bracket without url is literal",
			line: "[not a link]",
			want: []markdown.Token{
				text("["),
				text("not a link]"),
				tok(markdown.KindLineBreak),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.line))
		})
	}
}
