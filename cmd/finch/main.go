// Package main is the entry point for the finch CLI.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/finch-reader/finch/internal/cli"
	"github.com/finch-reader/finch/internal/logging"
	"github.com/finch-reader/finch/pkg/config"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)

		switch {
		case errors.Is(err, config.ErrInvalid):
			return cli.ExitConfigError
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
			return cli.ExitIOError
		default:
			return cli.ExitError
		}
	}

	return cli.ExitSuccess
}
