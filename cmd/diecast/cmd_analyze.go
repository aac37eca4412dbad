package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var analyzeFlags struct {
	output string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [report.txt|-]",
	Short: "Classify the part described by a CMM report",
	Long: `Reads a plain-text CMM report from the given file, or from stdin when the
argument is "-" or omitted, and prints the verdict with the feature,
metric and hypothesis tables.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlags.output, "output", "o", "text", "Output format: text, markdown or json")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open report: %w", err)
		}
		defer f.Close()
		in = f
	}

	report, err := newAnalyzer().AnalyzeReader(in)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	return writeReport(cmd.OutOrStdout(), report, analyzeFlags.output)
}
