package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-risk/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in tuning as YAML. Save it to one of the search paths and
edit it to change the game:

  --config <path>
  ~/.vectorrisk/config.yaml
  ./configs/vectorrisk.yaml

Examples:
  vectorrisk config
  vectorrisk config > ./configs/vectorrisk.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
