package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/internal/ui/pretty"
	"github.com/finch-reader/finch/pkg/document"
	"github.com/finch-reader/finch/pkg/pagecache"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show document metadata and cache status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}

	return cmd
}

func runInfo(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := document.Open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	rows := []pretty.Row{
		{Label: "path", Value: doc.Path()},
		{Label: "size", Value: fmt.Sprintf("%d bytes", doc.Size())},
		{Label: "viewport", Value: fmt.Sprintf("%dx%d", cfg.ViewportWidth, cfg.ViewportHeight)},
	}

	switch cache, err := pagecache.Open(doc.CachePath(), cfg); {
	case err == nil:
		rows = append(rows,
			pretty.Row{Label: "cache", Value: styles.Success.Render("current")},
			pretty.Row{Label: "pages", Value: fmt.Sprintf("%d", cache.PageCount())},
		)
		cache.Close()
	case errors.Is(err, os.ErrNotExist):
		rows = append(rows, pretty.Row{Label: "cache", Value: styles.Dim.Render("absent")})
	case errors.Is(err, pagecache.ErrInvalid):
		rows = append(rows, pretty.Row{Label: "cache", Value: styles.Failure.Render("stale")})
	default:
		return err
	}

	return pretty.RenderSummary(cmd.OutOrStdout(), styles, doc.Title(), rows)
}
