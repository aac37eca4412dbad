// Package infer scores the defect hypotheses of a die-cast part against its
// engineered metrics and picks a winner, confidence and severity.
package infer

import (
	"sort"

	"diecast/internal/metrics"
)

const (
	minConfidence = 5
	maxConfidence = 99
)

// Entry is the final score of one hypothesis.
type Entry struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Scoreboard is the outcome of one scoring pass.
type Scoreboard struct {
	// Entries holds one score per hypothesis in declaration order.
	Entries []Entry `json:"entries"`
	// Fired lists the IDs of rules whose condition held, in evaluation order.
	Fired []string `json:"fired"`
}

// Ranked returns the entries sorted by score, highest first. Equal scores
// keep declaration order.
func (b Scoreboard) Ranked() []Entry {
	out := make([]Entry, len(b.Entries))
	copy(out, b.Entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Winner returns the top-ranked hypothesis. When no hypothesis scores above
// zero the residual Other_Defect wins.
func (b Scoreboard) Winner() Entry {
	top := b.Ranked()[0]
	if top.Score <= 0 {
		return Entry{Label: OtherDefect, Score: b.score(OtherDefect)}
	}
	return top
}

func (b Scoreboard) score(l Label) float64 {
	for _, e := range b.Entries {
		if e.Label == l {
			return e.Score
		}
	}
	return 0
}

// Result is the classification of one part. RootCause and
// RecommendedAction are filled by the reasoning stage.
type Result struct {
	PartID            string   `json:"part_id"`
	Label             Label    `json:"label"`
	Confidence        float64  `json:"confidence"`
	Severity          Severity `json:"severity"`
	RootCause         string   `json:"root_cause"`
	RecommendedAction string   `json:"recommended_action"`
}

// Score runs the rule table over m in a single pass.
func Score(m metrics.Engineered, th Thresholds, rules []Rule) Scoreboard {
	var s Scores
	board := Scoreboard{Fired: []string{}}
	for _, r := range rules {
		if r.Apply(m, th, &s) {
			board.Fired = append(board.Fired, r.ID)
		}
	}
	for _, l := range Labels {
		board.Entries = append(board.Entries, Entry{Label: l, Score: s[l]})
	}
	return board
}

// Classify scores m with the default rule table and returns the verdict.
func Classify(partID string, m metrics.Engineered, th Thresholds) Result {
	return ClassifyBoard(partID, m, th, Score(m, th, DefaultRules()))
}

// ClassifyBoard derives the verdict from an already computed scoreboard.
func ClassifyBoard(partID string, m metrics.Engineered, th Thresholds, board Scoreboard) Result {
	w := board.Winner()
	return Result{
		PartID:     partID,
		Label:      w.Label,
		Confidence: clamp(w.Score, minConfidence, maxConfidence),
		Severity:   Grade(m, th),
	}
}

// Grade rates severity from the metrics alone.
func Grade(m metrics.Engineered, th Thresholds) Severity {
	switch {
	case m.OOTRatio > th.CriticalOOTRatio || m.StdDev > th.CriticalStdDev:
		return Critical
	case m.OOTCount > 0 || m.StdDev > th.ModerateStdDev || m.MaxAngularDev > th.ModerateAngular:
		return Moderate
	default:
		return Minor
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
