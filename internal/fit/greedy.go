// Package fit provides a greedy reference implementation of the layout
// engine's line-fitting collaborator. It breaks a block's words into
// lines with a first-fit fill and distributes alignment through per-word
// x offsets. Device builds swap in the platform fitter; the rendering
// core only ever sees the layout.Block interface.
package fit

import (
	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/font"
	"github.com/finch-reader/finch/pkg/layout"
)

// NewFactory returns a BlockFactory producing greedy fitter blocks that
// measure text through the given font registry.
func NewFactory(fonts *font.Registry, cfg config.Render) layout.BlockFactory {
	return func(style layout.BlockStyle) layout.Block {
		return &block{
			fonts:   fonts,
			kerning: cfg.KerningEnabled,
			style:   style,
		}
	}
}

// block accumulates styled words under one BlockStyle.
type block struct {
	fonts   *font.Registry
	kerning bool
	style   layout.BlockStyle
	words   []layout.Word
	spent   bool
}

func (b *block) AddWord(text string, flags layout.StyleFlags, isLink bool) {
	if isLink {
		// Link text renders in italic regardless of surrounding emphasis.
		flags |= layout.FlagLink | layout.FlagItalic
	}
	b.words = append(b.words, layout.Word{Text: text, Flags: flags})
}

func (b *block) Empty() bool { return len(b.words) == 0 }

func (b *block) Len() int { return len(b.words) }

func (b *block) Style() layout.BlockStyle { return b.style }

func (b *block) SetStyle(style layout.BlockStyle) { b.style = style }

// ExtractLines performs a first-fit greedy fill. One-shot: the block is
// spent afterwards and produces nothing on a second call.
func (b *block) ExtractLines(fontID int, width int, emit func(layout.Line)) {
	if b.spent || len(b.words) == 0 {
		return
	}
	b.spent = true

	spaceWidth := b.fonts.SpaceWidth(fontID)

	// Indents are relative to the line origin (the block's left inset).
	// The hanging indent is measured from the block's left margin, so
	// strip the inset back out.
	firstIndent := 0
	if b.style.IndentSet {
		firstIndent = int(b.style.TextIndent)
	}
	hangIndent := int(b.style.HangingIndent) - int(b.style.LeftInset())
	if hangIndent < 0 {
		hangIndent = 0
	}

	var (
		line      []layout.Word
		lineWidth int
		first     = true
	)

	indent := func() int {
		if first {
			return firstIndent
		}
		return hangIndent
	}

	flush := func(lastLine bool) {
		if len(line) == 0 {
			return
		}
		b.placeWords(fontID, line, indent(), width, lineWidth, lastLine)
		emit(layout.Line{Words: line})
		line = nil
		lineWidth = 0
		first = false
	}

	for _, word := range b.words {
		wordWidth := b.fonts.TextWidth(fontID, word.Text, b.kerning)

		needed := wordWidth
		if len(line) > 0 {
			needed += spaceWidth
		}
		if len(line) > 0 && indent()+lineWidth+needed > width {
			flush(false)
			needed = wordWidth
		}

		if len(line) > 0 {
			lineWidth += spaceWidth
		}
		line = append(line, word)
		lineWidth += wordWidth
	}
	flush(true)
}

// placeWords assigns x offsets implementing the block's alignment.
// Justification distributes the slack across the gaps of every line but
// the last; oversized words overflow to the right.
func (b *block) placeWords(fontID int, line []layout.Word, indent, width, natural int, lastLine bool) {
	slack := width - indent - natural
	if slack < 0 {
		slack = 0
	}

	shift := 0
	switch b.style.Alignment {
	case config.AlignCenter:
		shift = slack / 2
	case config.AlignRight:
		shift = slack
	}

	justify := b.style.Alignment == config.AlignJustify && !lastLine && len(line) > 1
	gaps := len(line) - 1
	spaceWidth := b.fonts.SpaceWidth(fontID)

	x := indent + shift
	for i := range line {
		line[i].X = int16(x)
		x += b.fonts.TextWidth(fontID, line[i].Text, b.kerning)
		if i < gaps {
			x += spaceWidth
			if justify {
				x += slack / gaps
				if i < slack%gaps {
					x++
				}
			}
		}
	}
}
