// Package cmm parses loosely structured CMM (coordinate measuring machine)
// inspection reports into typed feature measurements.
package cmm

import "strings"

// DefaultPartID is used when a report carries no "Part No" line.
const DefaultPartID = "A3188-337-00"

// SectionType classifies the physical region of the part a measurement belongs to.
type SectionType string

const (
	SectionThick      SectionType = "thick"
	SectionThin       SectionType = "thin"
	SectionStructural SectionType = "structural"
	SectionAngular    SectionType = "angular"
)

// axes is the fixed axis vocabulary. Axis tokens are purely descriptive.
var axes = map[string]bool{
	"X": true, "Y": true, "Z": true,
	"XZ": true, "YZ": true, "XY": true,
	"D": true, "R": true, "A": true, "S": true,
}

// IsAxis reports whether tok is an axis token (case-insensitive).
func IsAxis(tok string) bool {
	return axes[strings.ToUpper(tok)]
}

// Feature is one inspected dimension or angle.
type Feature struct {
	ID             string      `json:"feature_id"`
	Axis           string      `json:"axis"`
	Nominal        float64     `json:"nominal"`
	Actual         float64     `json:"actual"`
	Deviation      float64     `json:"deviation"`
	LowerTolerance float64     `json:"lower_tolerance"`
	UpperTolerance float64     `json:"upper_tolerance"`
	OutOfTolerance bool        `json:"out_of_tolerance"`
	Section        SectionType `json:"section_type"`
}

// sectionKeywords is checked in order; the first group with a substring
// match on the lower-cased feature id wins.
var sectionKeywords = []struct {
	section  SectionType
	keywords []string
}{
	{SectionThick, []string{"thick", "boss", "cylinder", "circle9", "circle21"}},
	{SectionThin, []string{"thin", "rib", "point62", "point67", "point68"}},
	{SectionAngular, []string{"ang", "angle"}},
	{SectionStructural, []string{"line", "point", "plane"}},
}

// ClassifySection infers the section type from a feature identifier.
// Identifiers matching no keyword are structural.
func ClassifySection(featureID string) SectionType {
	id := strings.ToLower(featureID)
	for _, g := range sectionKeywords {
		for _, kw := range g.keywords {
			if strings.Contains(id, kw) {
				return g.section
			}
		}
	}
	return SectionStructural
}
