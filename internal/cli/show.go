package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/internal/fit"
	"github.com/finch-reader/finch/internal/logging"
	"github.com/finch-reader/finch/internal/ui/pretty"
	"github.com/finch-reader/finch/pkg/layout"
	"github.com/finch-reader/finch/pkg/reader"
)

func newShowCommand() *cobra.Command {
	var pageNum int

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Preview a paginated page in the terminal",
		Long: `Show opens a reading session for the document, building or reusing
its page cache, and renders one page as terminal text. Without --page it
resumes at the last saved position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], pageNum)
		},
	}

	cmd.Flags().IntVar(&pageNum, "page", 0, "1-based page to show (0 = resume position)")

	return cmd
}

func runShow(cmd *cobra.Command, path string, pageNum int) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fonts, err := builtinRegistry()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logging.Default())

	session, err := reader.Open(ctx, path, cfg, fonts, fit.NewFactory(fonts, cfg))
	if err != nil {
		return err
	}
	defer session.Close()

	var page *layout.Page
	if pageNum > 0 {
		page, err = session.Seek(pageNum - 1)
	} else {
		page, err = session.Page()
	}
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	preview := pretty.NewPagePreview(styles, cmd.OutOrStdout(), int(cfg.ViewportWidth))

	return preview.Render(cmd.OutOrStdout(), page, session.PageNumber(), session.PageCount())
}
