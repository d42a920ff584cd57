package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/internal/logging"
	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/fsutil"
)

// defaultConfigName is the config file picked up from the working
// directory when --config is not given.
const defaultConfigName = "finch.yaml"

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  `Init writes a finch.yaml with the default render configuration.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(force bool) error {
	if !force {
		if _, err := os.Stat(defaultConfigName); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", defaultConfigName)
		}
	}

	data, err := config.Default().ToYAML()
	if err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(defaultConfigName, data, 0); err != nil {
		return err
	}

	logging.Default().Info("wrote config", logging.FieldPath, defaultConfigName)
	return nil
}
