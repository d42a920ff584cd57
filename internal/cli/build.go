package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/internal/fit"
	"github.com/finch-reader/finch/internal/logging"
	"github.com/finch-reader/finch/pkg/document"
	"github.com/finch-reader/finch/pkg/pagecache"
)

func newBuildCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build the page cache for a document",
		Long: `Build paginates a markup document under the current render
configuration and writes its binary page cache. An up-to-date cache is
left alone unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "rebuild even if the cache is current")

	return cmd
}

func runBuild(cmd *cobra.Command, path string, force bool) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fonts, err := builtinRegistry()
	if err != nil {
		return err
	}

	doc, err := document.Open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	if err := doc.EnsureCacheDir(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	if !force {
		if cache, err := pagecache.Open(doc.CachePath(), cfg); err == nil {
			pages := cache.PageCount()
			cache.Close()
			logger.Info("cache is current",
				logging.FieldPath, doc.CachePath(), logging.FieldPages, pages)
			return nil
		}
	}
	_ = os.Remove(doc.CachePath())

	pages, err := pagecache.Build(ctx, doc, doc.CachePath(), cfg, fonts, fit.NewFactory(fonts, cfg))
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}

	logger.Info("cache built",
		logging.FieldPath, doc.CachePath(),
		logging.FieldPages, pages,
		logging.FieldViewportW, cfg.ViewportWidth,
		logging.FieldViewportH, cfg.ViewportHeight)
	return nil
}
