package infer

import "diecast/internal/metrics"

// Rule weights.
const (
	goodScore          = 100
	disqualified       = -1000
	shrinkageScore     = 80
	contractionBonus   = 20
	shrinkagePenalty   = 80 // applied to Feature_Offset
	offsetOOTScore     = 95
	offsetScatterScore = 40
	gasScore           = 98
	coldShutScore      = 96
	coldShutPenalty    = 50 // applied to Feature_Offset
)

// Scores is the shared running total of every hypothesis, indexed by Label.
type Scores [len(labelNames)]float64

// Rule is one entry of the ordered scoring table. Each rule reads the
// metrics and may set, add to or subtract from any hypothesis score.
// Apply reports whether the rule's condition held.
type Rule struct {
	ID    string
	Name  string
	Apply func(m metrics.Engineered, th Thresholds, s *Scores) bool
}

// DefaultRules returns the scoring table in evaluation order. Every
// condition reads the metrics, never another rule's score, so only the
// cross-hypothesis adjustments interact.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID: "R1", Name: "good-pass",
			Apply: func(m metrics.Engineered, th Thresholds, s *Scores) bool {
				if m.OOTCount == 0 && m.StdDev < th.GoodMaxStdDev && abs(m.MeanDeviation) < th.GoodMaxAbsMean {
					s[Good] = goodScore
					return true
				}
				s[Good] = disqualified
				return false
			},
		},
		{
			ID: "R2", Name: "shrinkage-localized",
			Apply: func(m metrics.Engineered, th Thresholds, s *Scores) bool {
				if m.ThicknessRatio < th.ShrinkageMinRatio {
					return false
				}
				s[ShrinkagePorosity] += shrinkageScore
				if m.ThickMeanDev < th.ShrinkageContraction {
					s[ShrinkagePorosity] += contractionBonus
				}
				// Localized heavy-section error argues against a uniform offset.
				s[FeatureOffset] -= shrinkagePenalty
				return true
			},
		},
		{
			ID: "R3", Name: "offset-directional",
			Apply: func(m metrics.Engineered, th Thresholds, s *Scores) bool {
				if m.Directionality <= th.OffsetMinDirectionality || m.ThicknessRatio >= th.OffsetMaxRatio {
					return false
				}
				switch {
				case m.OOTCount > 0:
					s[FeatureOffset] += offsetOOTScore
				case m.StdDev > th.OffsetMinStdDev:
					s[FeatureOffset] += offsetScatterScore
				default:
					return false
				}
				return true
			},
		},
		{
			ID: "R4", Name: "gas-scatter",
			Apply: func(m metrics.Engineered, th Thresholds, s *Scores) bool {
				if m.StdDev <= th.GasMinStdDev || m.Directionality >= th.GasMaxDirectionality {
					return false
				}
				s[GasPorosity] = gasScore
				return true
			},
		},
		{
			ID: "R5", Name: "cold-shut-angular",
			Apply: func(m metrics.Engineered, th Thresholds, s *Scores) bool {
				if m.MaxAngularDev <= th.ColdShutMinAngular || m.ThicknessRatio >= th.ColdShutMaxRatio {
					return false
				}
				if m.OOTCount != 0 && m.MaxAngularDev <= m.AbsMeanDev {
					return false
				}
				s[ColdShut] = coldShutScore
				s[FeatureOffset] -= coldShutPenalty
				return true
			},
		},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
