package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"diecast/internal/display"
	"diecast/internal/format"
	"diecast/internal/infer"
)

// Render formats a report as terminal text (format.ASCII) or Markdown.
func Render(r Report, mode format.Mode) string {
	var b strings.Builder
	res := r.Result
	verdict := display.LabelWithCode(res.Label.String())

	if mode == format.Markdown {
		fmt.Fprintf(&b, "# CMM Defect Analysis: %s\n\n", res.PartID)
		fmt.Fprintf(&b, "- **Verdict:** %s\n", verdict)
		fmt.Fprintf(&b, "- **Confidence:** %.0f%%\n", res.Confidence)
		fmt.Fprintf(&b, "- **Severity:** %s\n\n", res.Severity)
		fmt.Fprintf(&b, "**Root cause.** %s\n\n", res.RootCause)
		fmt.Fprintf(&b, "**Recommended action.** %s\n\n", res.RecommendedAction)
		b.WriteString("## Features\n\n" + featureTable(r, mode) + "\n\n")
		b.WriteString("## Engineered Metrics\n\n" + metricsTable(r, mode) + "\n\n")
		b.WriteString("## Hypothesis Scores\n\n" + scoreTable(r, mode) + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Part:        %s\n", res.PartID)
	fmt.Fprintf(&b, "Verdict:     %s\n", verdict)
	fmt.Fprintf(&b, "Confidence:  %.0f%%\n", res.Confidence)
	fmt.Fprintf(&b, "Severity:    %s\n", res.Severity)
	fmt.Fprintf(&b, "Root cause:  %s\n", res.RootCause)
	fmt.Fprintf(&b, "Action:      %s\n\n", res.RecommendedAction)
	b.WriteString(featureTable(r, mode) + "\n")
	b.WriteString(metricsTable(r, mode) + "\n")
	b.WriteString(scoreTable(r, mode) + "\n")
	if r.Skipped > 0 {
		fmt.Fprintf(&b, "Skipped %d of %d non-blank line(s) that carried no measurement data.\n", r.Skipped, r.Lines)
	}
	return b.String()
}

// RenderJSON returns the report as indented JSON.
func RenderJSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func featureTable(r Report, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Title(fmt.Sprintf("Features (%d)", len(r.Features)))
	tb.Header("Feature", "Axis", "Section", "Nominal", "Actual", "Dev", "Tol", "OOT")
	for _, f := range r.Features {
		tb.Row(f.ID, f.Axis, display.Section(string(f.Section)),
			format.Fixed(f.Nominal, 3), format.Fixed(f.Actual, 3), format.Dev(f.Deviation),
			format.Dev(f.LowerTolerance)+" / "+format.Dev(f.UpperTolerance),
			format.BoolMark(!f.OutOfTolerance))
	}
	tb.AlignColumns(format.AlignRight, 4, 5, 6)
	return tb.String()
}

func metricsTable(r Report, mode format.Mode) string {
	m := r.Metrics
	tb := format.NewTable(mode)
	tb.Title("Engineered Metrics")
	tb.Header("Metric", "Value")
	rows := []struct {
		key string
		val string
	}{
		{"thickness_ratio", format.Fixed(m.ThicknessRatio, 3)},
		{"std_dev", format.Fixed(m.StdDev, 3)},
		{"mean_deviation", format.Dev(m.MeanDeviation)},
		{"abs_mean_dev", format.Fixed(m.AbsMeanDev, 3)},
		{"directionality", format.Percent(m.Directionality)},
		{"oot_count", fmt.Sprintf("%d / %d", m.OOTCount, m.FeatureCount)},
		{"oot_ratio", format.Percent(m.OOTRatio)},
		{"thick_mean_dev", format.Dev(m.ThickMeanDev)},
		{"thin_mean_dev", format.Dev(m.ThinMeanDev)},
		{"angular_mean_abs_dev", format.Fixed(m.AngularMeanAbsDev, 3)},
		{"max_angular_dev", format.Fixed(m.MaxAngularDev, 3)},
		{"thick_count", fmt.Sprint(m.ThickCount)},
		{"thin_count", fmt.Sprint(m.ThinCount)},
	}
	for _, row := range rows {
		tb.Row(display.Metric(row.key), row.val)
	}
	tb.AlignColumns(format.AlignRight, 2)
	return tb.String()
}

func scoreTable(r Report, mode format.Mode) string {
	winner := r.Result.Label
	tb := format.NewTable(mode)
	tb.Title("Hypothesis Scores")
	tb.Header("Rank", "Hypothesis", "Score", "")
	for i, e := range r.Scores.Ranked() {
		mark := ""
		if e.Label == winner {
			mark = "◀"
		}
		tb.Row(i+1, display.Label(e.Label.String()), fmt.Sprintf("%.0f", e.Score), mark)
	}
	tb.AlignColumns(format.AlignRight, 3)
	return tb.String() + "\n" + firedLine(r.Scores)
}

func firedLine(b infer.Scoreboard) string {
	if len(b.Fired) == 0 {
		return "Rules fired: none"
	}
	names := make([]string, len(b.Fired))
	for i, id := range b.Fired {
		names[i] = display.Rule(id) + " (" + id + ")"
	}
	return "Rules fired: " + strings.Join(names, ", ")
}
