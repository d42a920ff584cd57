package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/finch-reader/finch/pkg/layout"
)

// defaultColumns is the preview width used when the output is not a
// terminal.
const defaultColumns = 80

// PagePreview renders pages as plain terminal text. Pixel coordinates
// are scaled down to character columns so the preview keeps the page's
// proportions without pretending to be pixel-accurate.
type PagePreview struct {
	styles  *Styles
	columns int

	// ViewportWidth is the page width in pixels the scale maps from.
	ViewportWidth int
}

// NewPagePreview creates a preview renderer sized to the writer's
// terminal, falling back to a fixed width for pipes.
func NewPagePreview(styles *Styles, writer io.Writer, viewportWidth int) *PagePreview {
	columns := defaultColumns
	if f, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			columns = w
		}
	}
	return &PagePreview{styles: styles, columns: columns, ViewportWidth: viewportWidth}
}

// Render writes one page to w, one output line per page element.
func (p *PagePreview) Render(w io.Writer, page *layout.Page, number, total int) error {
	header := fmt.Sprintf("page %d of %d", number, total)
	if _, err := fmt.Fprintln(w, p.styles.Header.Render(header)); err != nil {
		return err
	}
	edge := p.styles.PageEdge.Render(strings.Repeat("=", p.ruleWidth(p.ViewportWidth)))
	if _, err := fmt.Fprintln(w, edge); err != nil {
		return err
	}

	for i := range page.Elements {
		if err := p.renderElement(w, &page.Elements[i]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, edge)
	return err
}

func (p *PagePreview) renderElement(w io.Writer, el *layout.Element) error {
	switch el.Tag {
	case layout.TagLine:
		var b strings.Builder
		for i, word := range el.Line.Words {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.styleWord(word))
		}
		_, err := fmt.Fprintf(w, "%s%s\n", p.indent(int(el.X)), b.String())
		return err

	case layout.TagImage:
		slot := fmt.Sprintf("[image #%d %dx%d]", el.Image.BitmapID, el.Image.Width, el.Image.Height)
		_, err := fmt.Fprintf(w, "%s%s\n", p.indent(int(el.X)), p.styles.ImageSlot.Render(slot))
		return err

	case layout.TagSeparator:
		rule := strings.Repeat("-", p.ruleWidth(int(el.Width)))
		_, err := fmt.Fprintf(w, "%s%s\n", p.indent(int(el.X)), p.styles.Rule.Render(rule))
		return err

	default:
		_, err := fmt.Fprintf(w, "%s\n", p.styles.Dim.Render(fmt.Sprintf("[?tag %d]", el.Tag)))
		return err
	}
}

func (p *PagePreview) styleWord(word layout.Word) string {
	switch {
	case word.Flags&layout.FlagLink != 0:
		return p.styles.WordLink.Render(word.Text)
	case word.Flags&layout.FlagBold != 0:
		return p.styles.WordBold.Render(word.Text)
	case word.Flags&layout.FlagItalic != 0:
		return p.styles.WordItal.Render(word.Text)
	default:
		return word.Text
	}
}

// indent maps a pixel x offset onto leading spaces.
func (p *PagePreview) indent(x int) string {
	return strings.Repeat(" ", p.scale(x))
}

func (p *PagePreview) ruleWidth(pixels int) int {
	w := p.scale(pixels)
	if w < 1 {
		w = 1
	}
	return w
}

// scale converts pixels to character columns, clamped to the terminal.
func (p *PagePreview) scale(pixels int) int {
	if pixels <= 0 || p.ViewportWidth <= 0 {
		return 0
	}
	cols := pixels * p.columns / p.ViewportWidth
	if cols > p.columns {
		cols = p.columns
	}
	return cols
}
