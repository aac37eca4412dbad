package cmm

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// unknownFeatureID labels rows that appear before any "Feature" line and
// carry no identifier of their own.
const unknownFeatureID = "UNKNOWN"

var (
	numericToken = regexp.MustCompile(`^-?\d+\.?\d*$`)
	partNoSplit  = regexp.MustCompile(`[\s:]+`)
)

// headerPrefixes mark metadata lines that carry no measurement data.
var headerPrefixes = []string{
	"Report Name",
	"Part Name",
	"Inspector",
	"Company",
	"Date",
	"Unit",
	"Feature Nom",
}

// Report is the parsed form of one inspection report.
type Report struct {
	PartID   string    `json:"part_id"`
	Features []Feature `json:"features"`
	// Lines counts non-blank lines; Skipped counts non-blank lines that were
	// neither metadata, control lines nor data rows.
	Lines   int `json:"lines"`
	Skipped int `json:"skipped"`
}

// parseState is the accumulator folded over the report lines.
type parseState struct {
	report    Report
	featureID string
}

// Parse turns raw report text into a Report. It never fails: lines that do
// not look like measurement rows are dropped.
func Parse(text string) Report {
	st := parseState{
		report:    Report{PartID: DefaultPartID, Features: []Feature{}},
		featureID: unknownFeatureID,
	}
	for _, line := range strings.Split(text, "\n") {
		st = st.step(line)
	}
	return st.report
}

// ParseReader reads r to EOF and parses it. The only error returned is a
// read error from r.
func ParseReader(r io.Reader) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, err
	}
	return Parse(string(data)), nil
}

func (st parseState) step(raw string) parseState {
	line := strings.TrimSpace(raw)
	if line == "" {
		return st
	}
	st.report.Lines++

	if isHeader(line) {
		return st
	}
	if strings.HasPrefix(line, "Part No") {
		parts := partNoSplit.Split(line, -1)
		if last := parts[len(parts)-1]; last != "" {
			st.report.PartID = last
		}
		return st
	}
	if strings.HasPrefix(line, "Feature ") {
		if f := strings.Fields(line); len(f) > 1 {
			st.featureID = f[1]
		}
		return st
	}

	feat, ok := parseRow(strings.Fields(line), st.featureID)
	if !ok {
		st.report.Skipped++
		return st
	}
	st.report.Features = append(st.report.Features, feat)
	return st
}

func isHeader(line string) bool {
	if strings.Contains(line, "Label:") {
		return true
	}
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// parseRow builds a Feature from the last six numeric tokens of a row.
func parseRow(tokens []string, contextID string) (Feature, bool) {
	var nums []float64
	for _, tok := range tokens {
		if !numericToken.MatchString(tok) {
			continue
		}
		// Out-of-range tokens still count as a column; ParseFloat yields ±Inf.
		v, _ := strconv.ParseFloat(tok, 64)
		nums = append(nums, v)
	}
	if len(nums) < 6 {
		return Feature{}, false
	}
	nums = nums[len(nums)-6:]

	id := contextID
	if first := tokens[0]; !numericToken.MatchString(first) && !IsAxis(first) && !strings.Contains(first, ".") {
		id = first
	}

	return Feature{
		ID:             id,
		Axis:           resolveAxis(tokens, id),
		Nominal:        nums[0],
		Actual:         nums[1],
		Deviation:      nums[2],
		LowerTolerance: nums[3],
		UpperTolerance: nums[4],
		OutOfTolerance: math.Round(nums[5]) != 0,
		Section:        ClassifySection(id),
	}, true
}

func resolveAxis(tokens []string, featureID string) string {
	for _, tok := range tokens {
		if IsAxis(tok) {
			return strings.ToUpper(tok)
		}
	}
	if segs := strings.Split(featureID, "_"); len(segs) > 1 {
		return segs[len(segs)-1]
	}
	return "D"
}
