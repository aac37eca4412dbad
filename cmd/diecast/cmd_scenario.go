package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diecast/internal/scenarios"
)

var scenarioFlags struct {
	output string
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Built-in sample reports, one per defect signature",
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenario names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range scenarios.List() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the raw report text of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := scenarios.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Analyze a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := scenarios.Load(args[0])
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), newAnalyzer().Analyze(text), scenarioFlags.output)
	},
}

func init() {
	scenarioRunCmd.Flags().StringVarP(&scenarioFlags.output, "output", "o", "text", "Output format: text, markdown or json")

	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)
}
