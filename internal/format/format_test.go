package format_test

import (
	"strings"
	"testing"

	"diecast/internal/format"
)

func TestASCII_Table(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Title("Features")
	tb.Header("Feature", "Section", "Dev")
	tb.Row("CIRCLE9_THICK", "thick", format.Dev(-0.25))
	tb.Row("RIB3_THIN", "thin", format.Dev(0.03))
	out := tb.String()

	for _, want := range []string{"FEATURE", "CIRCLE9_THICK", "-0.250", "+0.030", "Features"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_Table(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Title("ignored")
	tb.Header("Metric", "Value")
	tb.Row("std_dev", format.Fixed(0.2304, 3))
	tb.AlignColumns(format.AlignRight, 2)
	out := tb.String()

	if !strings.Contains(out, "| Metric") {
		t.Errorf("expected markdown header with '| Metric':\n%s", out)
	}
	if !strings.Contains(out, "0.230") {
		t.Errorf("expected '0.230' in output:\n%s", out)
	}
	if strings.Contains(out, "ignored") {
		t.Errorf("markdown output should not carry a title:\n%s", out)
	}
}

func TestDev(t *testing.T) {
	cases := map[float64]string{
		0:       "0.000",
		0.0001:  "0.000",
		-0.0004: "0.000",
		0.15:    "+0.150",
		-0.31:   "-0.310",
	}
	for in, want := range cases {
		if got := format.Dev(in); got != want {
			t.Errorf("Dev(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := format.Percent(0.8333); got != "83%" {
		t.Errorf("Percent(0.8333) = %q, want 83%%", got)
	}
}

func TestBoolMark(t *testing.T) {
	if format.BoolMark(true) != "✓" || format.BoolMark(false) != "✗" {
		t.Error("BoolMark returned unexpected marks")
	}
}
