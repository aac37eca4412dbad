package main

import (
	"fmt"
	"io"

	"diecast/internal/analysis"
	"diecast/internal/format"
)

// writeReport renders r to w in the named output format.
func writeReport(w io.Writer, r analysis.Report, output string) error {
	switch output {
	case "text", "":
		_, err := io.WriteString(w, analysis.Render(r, format.ASCII))
		return err
	case "markdown", "md":
		_, err := io.WriteString(w, analysis.Render(r, format.Markdown))
		return err
	case "json":
		data, err := analysis.RenderJSON(r)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, markdown or json)", output)
	}
}
