// Package mcp serves the defect analysis pipeline as MCP tools so agents and
// inspection front-ends can submit report text over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"diecast/internal/analysis"
	"diecast/internal/display"
	"diecast/internal/format"
	"diecast/internal/infer"
	"diecast/internal/logging"
	"diecast/internal/metrics"
	"diecast/internal/scenarios"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around an Analyzer.
type Server struct {
	MCPServer *sdkmcp.Server

	analyzer *analysis.Analyzer
	log      *slog.Logger
}

// NewServer creates an MCP server with the analysis tools registered. The
// analyzer's thresholds apply to every call.
func NewServer(a *analysis.Analyzer, version string) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(
			&sdkmcp.Implementation{Name: "diecast", Version: version},
			nil,
		),
		analyzer: a,
		log:      logging.New("mcp"),
	}
	s.registerTools()
	return s
}

// Run serves over stdin/stdout until ctx is canceled or the client hangs up.
func (s *Server) Run(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_report",
		Description: "Analyze the raw text of a CMM inspection report. Returns the defect label, confidence, severity, root cause and recommended action.",
	}, s.handleAnalyzeReport)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_scenarios",
		Description: "List the built-in sample reports, one per defect signature.",
	}, s.handleListScenarios)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_scenario",
		Description: "Analyze one of the built-in sample reports by name.",
	}, s.handleAnalyzeScenario)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_thresholds",
		Description: "Return the decision thresholds the server classifies with.",
	}, s.handleGetThresholds)
}

// --- Tool input/output types ---

type analyzeReportInput struct {
	Text   string `json:"text" jsonschema:"full text of the inspection report"`
	Render string `json:"render,omitempty" jsonschema:"also return a rendered report: text or markdown"`
}

type analyzeScenarioInput struct {
	Name   string `json:"name" jsonschema:"scenario name from list_scenarios"`
	Render string `json:"render,omitempty" jsonschema:"also return a rendered report: text or markdown"`
}

type verdictOutput struct {
	PartID            string             `json:"part_id"`
	Label             string             `json:"label"`
	DisplayName       string             `json:"display_name"`
	Confidence        float64            `json:"confidence"`
	Severity          string             `json:"severity"`
	RootCause         string             `json:"root_cause"`
	RecommendedAction string             `json:"recommended_action"`
	Scores            map[string]float64 `json:"scores"`
	Fired             []string           `json:"fired"`
	Metrics           metrics.Engineered `json:"metrics"`
	SkippedLines      int                `json:"skipped_lines"`
	Rendered          string             `json:"rendered,omitempty"`
}

type listScenariosInput struct{}

type listScenariosOutput struct {
	Scenarios []string `json:"scenarios"`
}

type getThresholdsInput struct{}

type getThresholdsOutput struct {
	Thresholds infer.Thresholds `json:"thresholds"`
}

// --- Tool handlers ---

func (s *Server) handleAnalyzeReport(_ context.Context, _ *sdkmcp.CallToolRequest, input analyzeReportInput) (*sdkmcp.CallToolResult, verdictOutput, error) {
	mode, err := renderMode(input.Render)
	if err != nil {
		return nil, verdictOutput{}, err
	}
	r := s.analyzer.Analyze(input.Text)
	s.log.Info("report analyzed", "part_id", r.Result.PartID, "label", r.Result.Label.String())
	return nil, newVerdict(r, mode), nil
}

func (s *Server) handleAnalyzeScenario(_ context.Context, _ *sdkmcp.CallToolRequest, input analyzeScenarioInput) (*sdkmcp.CallToolResult, verdictOutput, error) {
	if input.Name == "" {
		return nil, verdictOutput{}, errors.New("name is required")
	}
	mode, err := renderMode(input.Render)
	if err != nil {
		return nil, verdictOutput{}, err
	}
	text, err := scenarios.Load(input.Name)
	if err != nil {
		return nil, verdictOutput{}, fmt.Errorf("analyze_scenario: %w", err)
	}
	r := s.analyzer.Analyze(text)
	s.log.Info("scenario analyzed", "scenario", input.Name, "label", r.Result.Label.String())
	return nil, newVerdict(r, mode), nil
}

func (s *Server) handleListScenarios(_ context.Context, _ *sdkmcp.CallToolRequest, _ listScenariosInput) (*sdkmcp.CallToolResult, listScenariosOutput, error) {
	return nil, listScenariosOutput{Scenarios: scenarios.List()}, nil
}

func (s *Server) handleGetThresholds(_ context.Context, _ *sdkmcp.CallToolRequest, _ getThresholdsInput) (*sdkmcp.CallToolResult, getThresholdsOutput, error) {
	return nil, getThresholdsOutput{Thresholds: s.analyzer.Thresholds()}, nil
}

// --- helpers ---

// renderMode maps the optional render argument; nil means no rendering.
func renderMode(name string) (*format.Mode, error) {
	var m format.Mode
	switch name {
	case "":
		return nil, nil
	case "text":
		m = format.ASCII
	case "markdown":
		m = format.Markdown
	default:
		return nil, fmt.Errorf("unknown render %q (want text or markdown)", name)
	}
	return &m, nil
}

func newVerdict(r analysis.Report, mode *format.Mode) verdictOutput {
	res := r.Result
	scores := make(map[string]float64, len(r.Scores.Entries))
	for _, e := range r.Scores.Entries {
		scores[e.Label.String()] = e.Score
	}
	out := verdictOutput{
		PartID:            res.PartID,
		Label:             res.Label.String(),
		DisplayName:       display.Label(res.Label.String()),
		Confidence:        res.Confidence,
		Severity:          string(res.Severity),
		RootCause:         res.RootCause,
		RecommendedAction: res.RecommendedAction,
		Scores:            scores,
		Fired:             r.Scores.Fired,
		Metrics:           r.Metrics,
		SkippedLines:      r.Skipped,
	}
	if mode != nil {
		out.Rendered = analysis.Render(r, *mode)
	}
	return out
}
