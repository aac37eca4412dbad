package main

import (
	"context"

	"github.com/spf13/cobra"

	"diecast/internal/logging"
	mcpserver "diecast/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing analyze_report,
analyze_scenario, list_scenarios and get_thresholds. Logs go to stderr.

The server monitors for parent process death and exits when the host that
spawned it goes away.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := mcpserver.NewServer(newAnalyzer(), version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log := logging.New("mcp")
	mcpserver.WatchParent(ctx, cancel, log)

	log.Info("starting diecast MCP server over stdio (parent watchdog active)")
	return srv.Run(ctx)
}
