package pretty

import (
	"fmt"
	"io"
)

// Row is a single label/value line in a document summary.
type Row struct {
	Label string
	Value string
}

// RenderSummary writes a titled block of aligned label/value rows, the
// output of `finch info`.
func RenderSummary(w io.Writer, styles *Styles, title string, rows []Row) error {
	if _, err := fmt.Fprintln(w, styles.Title.Render(title)); err != nil {
		return err
	}

	width := 0
	for _, row := range rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}

	for _, row := range rows {
		label := fmt.Sprintf("%-*s", width, row.Label)
		if _, err := fmt.Fprintf(w, "  %s  %s\n",
			styles.Label.Render(label), styles.Value.Render(row.Value)); err != nil {
			return err
		}
	}
	return nil
}
