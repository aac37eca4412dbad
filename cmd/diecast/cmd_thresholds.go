package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Print the effective decision thresholds as YAML",
	Long: `Prints the thresholds in effect after applying --config. The output is a
valid config file: edit it and pass it back with --config to recalibrate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := activeConfig.MarshalThresholds()
		if err != nil {
			return fmt.Errorf("marshal thresholds: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
