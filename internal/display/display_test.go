package display

import "testing"

func TestLabel(t *testing.T) {
	cases := []struct{ code, want string }{
		{"Shrinkage_Porosity", "Shrinkage Porosity"},
		{"Gas_Porosity", "Gas Porosity"},
		{"Cold_Shut", "Cold Shut"},
		{"Feature_Offset", "Feature Offset"},
		{"Other_Defect", "Other Defect"},
		{"Good", "Good Part"},
		{"Mystery", "Mystery"},
	}
	for _, tc := range cases {
		if got := Label(tc.code); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestLabelWithCode(t *testing.T) {
	if got := LabelWithCode("Cold_Shut"); got != "Cold Shut (Cold_Shut)" {
		t.Errorf("LabelWithCode = %q", got)
	}
	if got := LabelWithCode("x"); got != "x" {
		t.Errorf("LabelWithCode(unknown) = %q, want passthrough", got)
	}
}

func TestRule(t *testing.T) {
	if got := Rule("R5"); got != "Angular Cold Shut" {
		t.Errorf("Rule(R5) = %q", got)
	}
	if got := Rule("R99"); got != "R99" {
		t.Errorf("Rule(R99) = %q, want passthrough", got)
	}
}

func TestMetricAndSection(t *testing.T) {
	if got := Metric("thickness_ratio"); got != "Thickness Ratio" {
		t.Errorf("Metric = %q", got)
	}
	if got := Section("angular"); got != "Angular" {
		t.Errorf("Section = %q", got)
	}
	if got := Section("odd"); got != "odd" {
		t.Errorf("Section(unknown) = %q", got)
	}
}
