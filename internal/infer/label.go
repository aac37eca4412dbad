package infer

import "fmt"

// Label is a defect hypothesis. Declaration order is the tie-break priority.
type Label int

const (
	ShrinkagePorosity Label = iota
	GasPorosity
	ColdShut
	FeatureOffset
	OtherDefect
	Good
)

// Labels lists every hypothesis in priority order.
var Labels = []Label{ShrinkagePorosity, GasPorosity, ColdShut, FeatureOffset, OtherDefect, Good}

var labelNames = [...]string{
	ShrinkagePorosity: "Shrinkage_Porosity",
	GasPorosity:       "Gas_Porosity",
	ColdShut:          "Cold_Shut",
	FeatureOffset:     "Feature_Offset",
	OtherDefect:       "Other_Defect",
	Good:              "Good",
}

func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// ParseLabel maps a label name back to its Label.
func ParseLabel(s string) (Label, error) {
	for i, name := range labelNames {
		if name == s {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("unknown label %q", s)
}

func (l Label) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Label) UnmarshalText(b []byte) error {
	v, err := ParseLabel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Severity grades a part independently of its label.
type Severity string

const (
	Minor    Severity = "Minor"
	Moderate Severity = "Moderate"
	Critical Severity = "Critical"
)
