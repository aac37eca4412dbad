// diecast deduces the most likely casting defect of a die-cast part from its
// CMM inspection report.
//
// Usage:
//
//	diecast analyze [report.txt|-] [-o text|markdown|json]
//	diecast scenario list
//	diecast scenario show <name>
//	diecast scenario run <name> [-o text|markdown|json]
//	diecast thresholds
//	diecast serve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diecast/internal/analysis"
	"diecast/internal/config"
	"diecast/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// activeConfig is resolved once per invocation in PersistentPreRunE.
var activeConfig = config.Default()

var rootCmd = &cobra.Command{
	Use:   "diecast",
	Short: "Rule-based defect deduction for die-cast CMM reports",
	Long: "diecast parses a coordinate-measuring-machine inspection report, reduces the\n" +
		"deviations to engineered metrics and classifies the part as Good or as one of\n" +
		"five casting defects with a confidence, severity, root cause and remedy.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Config file (YAML or JSON); defaults to $"+config.EnvConfigPath)
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json (default text)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(thresholdsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

// setup resolves configuration (file, then environment, then flags) and
// initialises logging on stderr.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(rootFlags.configPath)
	if err != nil {
		return err
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		cfg.LogFormat = rootFlags.logFormat
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())
	activeConfig = cfg
	return nil
}

func newAnalyzer() *analysis.Analyzer {
	return analysis.New(analysis.WithThresholds(activeConfig.Thresholds))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
