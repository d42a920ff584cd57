// Package pretty provides Lipgloss-based styled output for the finch CLI:
// document summaries and terminal previews of paginated pages.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Summary components
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style

	// Page preview components
	Header    lipgloss.Style
	WordBold  lipgloss.Style
	WordItal  lipgloss.Style
	WordLink  lipgloss.Style
	Rule      lipgloss.Style
	ImageSlot lipgloss.Style
	PageEdge  lipgloss.Style

	// Status
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return &Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value: lipgloss.NewStyle(),

		Header:    lipgloss.NewStyle().Bold(true),
		WordBold:  lipgloss.NewStyle().Bold(true),
		WordItal:  lipgloss.NewStyle().Italic(true),
		WordLink:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		Rule:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ImageSlot: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		PageEdge:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title:     plain,
		Label:     plain,
		Value:     plain,
		Header:    plain,
		WordBold:  plain,
		WordItal:  plain,
		WordLink:  plain,
		Rule:      plain,
		ImageSlot: plain,
		PageEdge:  plain,
		Success:   plain,
		Failure:   plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
