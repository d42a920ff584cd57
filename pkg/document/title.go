package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// titleScanLimit bounds how much of the document is parsed for metadata.
// Titles live at the top; buffering the whole file would defeat the
// point of streaming everywhere else.
const titleScanLimit = 16 * 1024

// Title returns the document's display title: the text of the first
// heading near the top of the file, or the file stem when none exists.
func (d *File) Title() string {
	limit := d.size
	if limit > titleScanLimit {
		limit = titleScanLimit
	}

	head := make([]byte, limit)
	if _, err := d.ReadAt(head, 0); err != nil {
		return d.Stem()
	}

	if title := firstHeading(head); title != "" {
		return title
	}
	return d.Stem()
}

// firstHeading parses content and returns the text of the first heading,
// or "".
func firstHeading(content []byte) string {
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = headingText(heading, content)
		return ast.WalkStop, nil
	})

	return strings.TrimSpace(title)
}

// headingText flattens the text children of a heading node.
func headingText(heading *ast.Heading, content []byte) string {
	var sb strings.Builder
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(content))
		}
	}
	return sb.String()
}
