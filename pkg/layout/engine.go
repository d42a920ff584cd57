package layout

import (
	"strings"

	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/font"
	"github.com/finch-reader/finch/pkg/markdown"
)

// Default spacing constants, in pixels.
const (
	blockquoteMarginLeft  = 15
	blockquotePaddingLeft = 5
	listIndentStep        = 15
	separatorWidthPercent = 80
)

// PageFunc receives each completed page, in document order. The page is
// immutable once handed over.
type PageFunc func(*Page)

// Engine consumes the token stream and produces pages. It keeps exactly
// one in-progress text block and one in-progress page; everything else
// streams through, so memory stays bounded by the viewport.
//
// The engine is single-threaded: feed it tokens from one goroutine and
// call Finish when the stream ends.
type Engine struct {
	cfg      config.Render
	fonts    *font.Registry
	newBlock BlockFactory
	complete PageFunc

	block Block
	page  *Page
	nextY int

	inBold       bool
	inItalic     bool
	inHeader     bool
	inBlockquote bool
}

// NewEngine returns an engine ready to receive tokens. The first block
// uses the paragraph style.
func NewEngine(cfg config.Render, fonts *font.Registry, newBlock BlockFactory, complete PageFunc) *Engine {
	e := &Engine{
		cfg:      cfg,
		fonts:    fonts,
		newBlock: newBlock,
		complete: complete,
	}
	e.block = newBlock(e.paragraphStyle())
	return e
}

func (e *Engine) lineHeight() int {
	return e.fonts.LineHeight(e.cfg.FontID)
}

// compressedLineHeight is the vertical advance per placed line.
func (e *Engine) compressedLineHeight() int {
	return int(float32(e.lineHeight()) * e.cfg.LineCompression)
}

// currentFlags returns the emphasis bit set for the next word. Headers
// render bold.
func (e *Engine) currentFlags() StyleFlags {
	var flags StyleFlags
	if e.inBold || e.inHeader {
		flags |= FlagBold
	}
	if e.inItalic {
		flags |= FlagItalic
	}
	return flags
}

func (e *Engine) paragraphStyle() BlockStyle {
	alignment := e.cfg.Alignment
	if alignment == config.AlignNone {
		alignment = config.AlignJustify
	}
	return BlockStyle{Alignment: alignment, AlignSet: true}
}

func (e *Engine) headerStyle(level int) BlockStyle {
	lineHeight := e.lineHeight()
	scale := float32(0.5)
	if level <= 2 {
		scale = 1.0
	}
	return BlockStyle{
		Alignment: config.AlignLeft,
		AlignSet:  true,
		MarginTop: int16(float32(lineHeight) * scale),
		// Headers sit close to the text they introduce.
		MarginBottom: int16(float32(lineHeight) * 0.3),
	}
}

func (e *Engine) blockquoteStyle() BlockStyle {
	return BlockStyle{
		Alignment:   e.cfg.Alignment,
		AlignSet:    true,
		MarginLeft:  blockquoteMarginLeft,
		PaddingLeft: blockquotePaddingLeft,
	}
}

// listItemStyle indents one step per nesting level and hangs continuation
// lines past the marker prefix.
func (e *Engine) listItemStyle(level int, prefix string) BlockStyle {
	margin := int16(listIndentStep * (level + 1))
	prefixWidth := e.fonts.TextWidth(e.cfg.FontID, prefix, e.cfg.KerningEnabled)
	return BlockStyle{
		Alignment:     config.AlignLeft,
		AlignSet:      true,
		MarginLeft:    margin,
		HangingIndent: margin + int16(prefixWidth),
	}
}

// startNewBlock begins a block with the given style. A non-empty current
// block is flushed to pages first; an empty one merges its style with the
// new one instead, so consecutive style changes with no intervening text
// do not emit spurious empty blocks.
func (e *Engine) startNewBlock(style BlockStyle) {
	if e.block != nil {
		if e.block.Empty() {
			e.block.SetStyle(e.block.Style().Combine(style))
			return
		}
		e.makePages()
	}
	e.block = e.newBlock(style)
}

// ensurePage lazily opens the first page.
func (e *Engine) ensurePage() {
	if e.page == nil {
		e.page = &Page{}
		e.nextY = 0
	}
}

// addLineToPage places one fitted line at the current cursor. The page
// break decision happens here, before the line is placed, so blocks split
// across pages line-by-line and the overflowing line starts the next page
// at Y=0.
func (e *Engine) addLineToPage(line Line, xOffset int16) {
	lineHeight := e.compressedLineHeight()

	if e.nextY+lineHeight > int(e.cfg.ViewportHeight) {
		e.complete(e.page)
		e.page = &Page{}
		e.nextY = 0
	}

	e.page.Elements = append(e.page.Elements, Element{
		Tag:  TagLine,
		X:    xOffset,
		Y:    int16(e.nextY),
		Line: line,
	})
	e.nextY += lineHeight
}

// makePages flushes the current block into the current page, breaking to
// new pages as the viewport fills. The block is spent afterwards and is
// replaced by an empty block with the same style.
func (e *Engine) makePages() {
	if e.block == nil || e.block.Empty() {
		return
	}
	e.ensurePage()

	style := e.block.Style()

	if style.MarginTop > 0 {
		e.nextY += int(style.MarginTop)
	}
	if style.PaddingTop > 0 {
		e.nextY += int(style.PaddingTop)
	}

	effectiveWidth := int(e.cfg.ViewportWidth)
	if inset := int(style.TotalHorizontalInset()); inset < effectiveWidth {
		effectiveWidth -= inset
	}

	leftInset := style.LeftInset()
	e.block.ExtractLines(e.cfg.FontID, effectiveWidth, func(line Line) {
		e.addLineToPage(line, leftInset)
	})

	if style.MarginBottom > 0 {
		e.nextY += int(style.MarginBottom)
	}
	if style.PaddingBottom > 0 {
		e.nextY += int(style.PaddingBottom)
	}
	if e.cfg.ExtraParagraphSpacing {
		e.nextY += e.compressedLineHeight() / 2
	}

	e.block = e.newBlock(style)
}

// addWords splits text on whitespace and appends each word to the
// current block.
func (e *Engine) addWords(text string, flags StyleFlags, isLink bool) {
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t'
	}) {
		e.block.AddWord(word, flags, isLink)
	}
}

// HandleToken advances the layout state machine by one token. Pass this
// method to markdown.NewTokenizer as the emit callback.
func (e *Engine) HandleToken(tok markdown.Token) {
	switch tok.Kind {
	case markdown.KindHeaderStart:
		e.inHeader = true
		e.startNewBlock(e.headerStyle(tok.Level))

	case markdown.KindHeaderEnd:
		e.inHeader = false

	case markdown.KindBoldStart:
		e.inBold = true
	case markdown.KindBoldEnd:
		e.inBold = false
	case markdown.KindItalicStart:
		e.inItalic = true
	case markdown.KindItalicEnd:
		e.inItalic = false
	case markdown.KindBoldItalicStart:
		e.inBold = true
		e.inItalic = true
	case markdown.KindBoldItalicEnd:
		e.inBold = false
		e.inItalic = false

	case markdown.KindText:
		e.addWords(tok.Text, e.currentFlags(), false)

	case markdown.KindCodeSpan:
		// Code spans render as regular text; the reader has no
		// monospace face.
		if tok.Text != "" {
			e.block.AddWord(tok.Text, 0, false)
		}

	case markdown.KindLinkText:
		e.addWords(tok.Text, e.currentFlags(), true)

	case markdown.KindLinkURL:
		// Only the link text is shown.

	case markdown.KindListItem:
		e.startNewBlock(e.listItemStyle(tok.Level, "• "))
		e.block.AddWord("•", 0, false)

	case markdown.KindOrderedItem:
		prefix := tok.Text + ". "
		e.startNewBlock(e.listItemStyle(tok.Level, prefix))
		e.block.AddWord(tok.Text+".", 0, false)

	case markdown.KindBlockquoteStart:
		e.inBlockquote = true
		e.startNewBlock(e.blockquoteStyle())

	case markdown.KindBlockquoteEnd:
		e.inBlockquote = false

	case markdown.KindHorizontalRule:
		e.makePages()
		e.ensurePage()
		lineHeight := e.lineHeight()
		width := int16(int(e.cfg.ViewportWidth) * separatorWidthPercent / 100)
		e.page.Elements = append(e.page.Elements, Element{
			Tag:   TagSeparator,
			X:     (int16(e.cfg.ViewportWidth) - width) / 2,
			Y:     int16(e.nextY + lineHeight/2),
			Width: width,
		})
		e.nextY += lineHeight

	case markdown.KindParagraphBreak:
		hadContent := e.block != nil && !e.block.Empty()
		if e.inBlockquote {
			e.startNewBlock(e.blockquoteStyle())
		} else {
			e.startNewBlock(e.paragraphStyle())
		}
		if hadContent {
			e.nextY += e.lineHeight() / 2
		}

	case markdown.KindLineBreak:
		// Soft break: wrapping is the line fitter's concern.

	case markdown.KindHardLineBreak:
		// Force a visual line break without paragraph spacing. makePages
		// already restarts the block with the same style; starting a new
		// block here would merge the style with itself and double the
		// insets.
		e.makePages()

	case markdown.KindCodeBlockStart:
		e.startNewBlock(e.paragraphStyle())

	case markdown.KindCodeBlockLine:
		// One unsplit word per line preserves interior spacing; each
		// line flushes as its own block to defeat wrapping.
		if tok.Text != "" {
			e.block.AddWord(tok.Text, 0, false)
		}
		e.makePages()

	case markdown.KindCodeBlockEnd:
		// Nothing to close; every code line already flushed.
	}
}

// Finish flushes the remaining block and hands over the final page.
// Pages already handed to the consumer are never retracted.
func (e *Engine) Finish() {
	if e.block != nil && !e.block.Empty() {
		e.makePages()
	}
	if e.page != nil && len(e.page.Elements) > 0 {
		e.complete(e.page)
	}
	e.page = nil
}
