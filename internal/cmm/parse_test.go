package cmm

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"diecast/internal/scenarios"

	"github.com/google/go-cmp/cmp"
)

func TestParse_GoodFixture(t *testing.T) {
	text, err := scenarios.Load("good")
	if err != nil {
		t.Fatal(err)
	}
	got := Parse(text)

	want := Report{
		PartID: "A3188-337-00",
		Features: []Feature{
			{ID: "CIRCLE9_THICK", Axis: "D", Nominal: 25.000, Actual: 25.010, Deviation: 0.010, LowerTolerance: -0.100, UpperTolerance: 0.100, Section: SectionThick},
			{ID: "RIB3_THIN", Axis: "Z", Nominal: 4.000, Actual: 3.992, Deviation: -0.008, LowerTolerance: -0.100, UpperTolerance: 0.100, Section: SectionThin},
			{ID: "PLANE1_FLAT", Axis: "Z", Nominal: 0.000, Actual: 0.005, Deviation: 0.005, LowerTolerance: -0.100, UpperTolerance: 0.100, Section: SectionStructural},
			{ID: "ANGLE_A1", Axis: "A", Nominal: 12.000, Actual: 12.012, Deviation: 0.012, LowerTolerance: -0.500, UpperTolerance: 0.500, Section: SectionAngular},
		},
		Lines: 14,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(good) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FixtureSections(t *testing.T) {
	cases := []struct {
		name     string
		partID   string
		sections []SectionType
		oot      int
	}{
		{
			name:     "offset",
			partID:   "A3188-337-01",
			sections: []SectionType{SectionThick, SectionThick, SectionStructural, SectionStructural, SectionThin, SectionAngular},
			oot:      5,
		},
		{
			name:     "shrinkage",
			partID:   "A3188-412-00",
			sections: []SectionType{SectionThick, SectionThick, SectionThick, SectionThin, SectionThin, SectionStructural, SectionAngular},
			oot:      3,
		},
		{
			name:     "gas",
			partID:   "A3188-520-00",
			sections: []SectionType{SectionThick, SectionThick, SectionThin, SectionThin, SectionStructural, SectionStructural, SectionAngular, SectionStructural},
			oot:      6,
		},
		{
			name:     "coldshut",
			partID:   "A3188-611-00",
			sections: []SectionType{SectionThick, SectionThin, SectionStructural, SectionAngular, SectionAngular, SectionStructural},
			oot:      1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, err := scenarios.Load(tc.name)
			if err != nil {
				t.Fatal(err)
			}
			r := Parse(text)
			if r.PartID != tc.partID {
				t.Errorf("PartID = %q, want %q", r.PartID, tc.partID)
			}
			var sections []SectionType
			oot := 0
			for _, f := range r.Features {
				sections = append(sections, f.Section)
				if f.OutOfTolerance {
					oot++
				}
			}
			if diff := cmp.Diff(tc.sections, sections); diff != "" {
				t.Errorf("sections mismatch (-want +got):\n%s", diff)
			}
			if oot != tc.oot {
				t.Errorf("out-of-tolerance rows = %d, want %d", oot, tc.oot)
			}
			if r.Skipped != 0 {
				t.Errorf("Skipped = %d, want 0", r.Skipped)
			}
		})
	}
}

func TestParse_FeatureContextCarriesAcrossRows(t *testing.T) {
	text, err := scenarios.Load("coldshut")
	if err != nil {
		t.Fatal(err)
	}
	r := Parse(text)
	if got := r.Features[3]; got.ID != "ANGLE_E1" || got.Axis != "A" || !got.OutOfTolerance {
		t.Errorf("feature 3 = %+v, want ANGLE_E1/A out of tolerance", got)
	}
	if got := r.Features[5].ID; got != "POINT20_Z" {
		t.Errorf("explicit row id = %q, want POINT20_Z to override context", got)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "\n\n   \n", "Report Name: x\nUnit: mm\nFeature Nom Act Dev\n"} {
		r := Parse(text)
		if r.PartID != DefaultPartID {
			t.Errorf("PartID = %q, want default", r.PartID)
		}
		if r.Features == nil || len(r.Features) != 0 {
			t.Errorf("Features = %#v, want empty non-nil slice", r.Features)
		}
	}
}

func TestParse_PartNumber(t *testing.T) {
	cases := []struct{ line, want string }{
		{"Part No: X-100", "X-100"},
		{"Part No 77-1", "77-1"},
		{"Part No.:  B2:C3", "C3"},
		{"Part No:", DefaultPartID},
	}
	for _, tc := range cases {
		if got := Parse(tc.line).PartID; got != tc.want {
			t.Errorf("Parse(%q).PartID = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestParse_RowRules(t *testing.T) {
	text := strings.Join([]string{
		"Feature HOLE_7",
		"1 2 3 x 10.0 10.1 0.1 -0.2 0.2 0", // leading numerics ignored, lower-case axis
		"v1.2 10.0 10.1 0.1 -0.2 0.2 0.6",  // dotted first token is not an id
		"BORE 10.0 10.1 0.1 -0.2 0.2 0.4",  // no axis token, no underscore
		"WALL_X_TOP 5 5 0 -1 1 -1",         // axis from the last underscore segment
		"RIB9 Z 1.0 1.0 0.0 -0.1 0.1",      // five numerics: dropped
		"comment line with words only",     // dropped
		"Something Label: 1 2 3 4 5 6",     // metadata
	}, "\n")
	r := Parse(text)

	want := []Feature{
		{ID: "HOLE_7", Axis: "X", Nominal: 10.0, Actual: 10.1, Deviation: 0.1, LowerTolerance: -0.2, UpperTolerance: 0.2, Section: SectionStructural},
		{ID: "HOLE_7", Axis: "7", Nominal: 10.0, Actual: 10.1, Deviation: 0.1, LowerTolerance: -0.2, UpperTolerance: 0.2, OutOfTolerance: true, Section: SectionStructural},
		{ID: "BORE", Axis: "D", Nominal: 10.0, Actual: 10.1, Deviation: 0.1, LowerTolerance: -0.2, UpperTolerance: 0.2, Section: SectionStructural},
		{ID: "WALL_X_TOP", Axis: "TOP", Nominal: 5, Actual: 5, Deviation: 0, LowerTolerance: -1, UpperTolerance: 1, OutOfTolerance: true, Section: SectionStructural},
	}
	if diff := cmp.Diff(want, r.Features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
	if r.Lines != 8 || r.Skipped != 2 {
		t.Errorf("Lines/Skipped = %d/%d, want 8/2", r.Lines, r.Skipped)
	}
}

func TestParse_OutOfRangeNumberKeepsColumns(t *testing.T) {
	huge := strings.Repeat("9", 400)
	r := Parse("BOSS1 D 9.0 1.0 2.0 0.5 -0.1 0.1 " + huge)
	if len(r.Features) != 1 {
		t.Fatalf("features = %+v, want one row", r.Features)
	}
	want := Feature{ID: "BOSS1", Axis: "D", Nominal: 1.0, Actual: 2.0, Deviation: 0.5, LowerTolerance: -0.1, UpperTolerance: 0.1, OutOfTolerance: true, Section: SectionThick}
	if diff := cmp.Diff(want, r.Features[0]); diff != "" {
		t.Errorf("feature mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RowBeforeAnyFeatureLine(t *testing.T) {
	r := Parse("D 1.0 1.1 0.1 -0.2 0.2 0")
	if len(r.Features) != 1 || r.Features[0].ID != unknownFeatureID {
		t.Fatalf("features = %+v, want one row with id %s", r.Features, unknownFeatureID)
	}
}

func TestParseReader_MatchesParse(t *testing.T) {
	text, err := scenarios.Load("gas")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if diff := cmp.Diff(Parse(text), got); diff != "" {
		t.Errorf("ParseReader mismatch (-Parse +ParseReader):\n%s", diff)
	}
}

func TestParseReader_LongLine(t *testing.T) {
	text := "Feature BIG\nCIRCLE9_THICK D 1.0 1.1 0.1 -0.2 0.2 0 " + strings.Repeat("x", 2<<20) + "\n"
	got, err := ParseReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if diff := cmp.Diff(Parse(text), got); diff != "" {
		t.Errorf("ParseReader mismatch (-Parse +ParseReader):\n%s", diff)
	}
	if len(got.Features) != 1 {
		t.Errorf("features = %d, want 1", len(got.Features))
	}
}

func TestParseReader_ReadError(t *testing.T) {
	boom := errors.New("disk gone")
	if _, err := ParseReader(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestClassifySection(t *testing.T) {
	cases := []struct {
		id   string
		want SectionType
	}{
		{"CIRCLE9_THICK", SectionThick},
		{"boss_12", SectionThick},
		{"Cylinder3", SectionThick},
		{"CIRCLE21", SectionThick},
		{"THIN_WALL", SectionThin},
		{"RIB2", SectionThin},
		{"POINT62", SectionThin},
		{"point68_z", SectionThin},
		{"ANGLE_A1", SectionAngular},
		{"DRAFT_ANG", SectionAngular},
		{"LINE4", SectionStructural},
		{"POINT14", SectionStructural},
		{"PLANE_DATUM", SectionStructural},
		{"HOLE_7", SectionStructural},
		{"RIB_ANGLE", SectionThin},
		{"THICK_RIB", SectionThick},
	}
	for _, tc := range cases {
		if got := ClassifySection(tc.id); got != tc.want {
			t.Errorf("ClassifySection(%q) = %s, want %s", tc.id, got, tc.want)
		}
	}
}

func TestIsAxis(t *testing.T) {
	for _, tok := range []string{"X", "y", "xz", "YZ", "Xy", "D", "r", "A", "s"} {
		if !IsAxis(tok) {
			t.Errorf("IsAxis(%q) = false, want true", tok)
		}
	}
	for _, tok := range []string{"W", "XYZ", "", "DD"} {
		if IsAxis(tok) {
			t.Errorf("IsAxis(%q) = true, want false", tok)
		}
	}
}
