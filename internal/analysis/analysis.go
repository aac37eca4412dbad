// Package analysis runs the deduction pipeline: report text is parsed into
// features, reduced to engineered metrics, scored against the defect
// hypotheses and explained.
package analysis

import (
	"io"
	"log/slog"

	"diecast/internal/cmm"
	"diecast/internal/infer"
	"diecast/internal/logging"
	"diecast/internal/metrics"
	"diecast/internal/reasoning"
)

// Report is everything one analysis produced. Result is the verdict; the
// remaining fields are kept for display and audit.
type Report struct {
	Result   infer.Result       `json:"result"`
	Metrics  metrics.Engineered `json:"metrics"`
	Scores   infer.Scoreboard   `json:"scores"`
	Features []cmm.Feature      `json:"features"`
	Lines    int                `json:"lines"`
	Skipped  int                `json:"skipped"`
}

// Analyzer holds the thresholds and rule table for a run. The zero value is
// not usable; use New. An Analyzer is safe for concurrent use.
type Analyzer struct {
	th    infer.Thresholds
	rules []infer.Rule
	log   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithThresholds replaces the default thresholds.
func WithThresholds(th infer.Thresholds) Option {
	return func(a *Analyzer) { a.th = th }
}

// WithRules replaces the default rule table.
func WithRules(rules []infer.Rule) Option {
	return func(a *Analyzer) { a.rules = rules }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// New returns an Analyzer with default thresholds and rules.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		th:    infer.DefaultThresholds(),
		rules: infer.DefaultRules(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		a.log = logging.New("analysis")
	}
	return a
}

// Thresholds returns the thresholds in effect.
func (a *Analyzer) Thresholds() infer.Thresholds { return a.th }

// Analyze runs the full pipeline over report text. It never fails; the same
// text always yields the same Report.
func (a *Analyzer) Analyze(text string) Report {
	return a.run(cmm.Parse(text))
}

// AnalyzeReader reads r to EOF and analyzes it. Only read errors are returned.
func (a *Analyzer) AnalyzeReader(r io.Reader) (Report, error) {
	parsed, err := cmm.ParseReader(r)
	if err != nil {
		return Report{}, err
	}
	return a.run(parsed), nil
}

func (a *Analyzer) run(parsed cmm.Report) Report {
	a.log.Debug("parsed report",
		"part_id", parsed.PartID, "features", len(parsed.Features),
		"lines", parsed.Lines, "skipped", parsed.Skipped)

	m := metrics.Compute(parsed.Features)
	a.log.Debug("computed metrics",
		"thickness_ratio", m.ThicknessRatio, "std_dev", m.StdDev,
		"directionality", m.Directionality, "oot_count", m.OOTCount)

	board := infer.Score(m, a.th, a.rules)
	res := infer.ClassifyBoard(parsed.PartID, m, a.th, board)
	res.RootCause, res.RecommendedAction = reasoning.Explain(res.Label, m)
	a.log.Debug("classified part",
		"part_id", res.PartID, "label", res.Label.String(),
		"confidence", res.Confidence, "severity", res.Severity, "fired", board.Fired)

	return Report{
		Result:   res,
		Metrics:  m,
		Scores:   board,
		Features: parsed.Features,
		Lines:    parsed.Lines,
		Skipped:  parsed.Skipped,
	}
}
