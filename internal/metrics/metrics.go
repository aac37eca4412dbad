// Package metrics reduces a sequence of CMM feature measurements to the
// fixed set of summary statistics the inference rules operate on.
package metrics

import (
	"math"

	"diecast/internal/cmm"
)

// NoiseFloor is the light-section error below which the thickness ratio is
// normalised against a constant instead of the measured light-section error.
const NoiseFloor = 0.05

// Engineered is the summary-statistics record computed once per analysis.
type Engineered struct {
	ThicknessRatio    float64 `json:"thickness_ratio"`
	StdDev            float64 `json:"std_dev"`
	OOTCount          int     `json:"oot_count"`
	OOTRatio          float64 `json:"oot_ratio"`
	MeanDeviation     float64 `json:"mean_deviation"`
	Directionality    float64 `json:"directionality"`
	ThickMeanDev      float64 `json:"thick_mean_dev"`
	ThinMeanDev       float64 `json:"thin_mean_dev"`
	AngularMeanAbsDev float64 `json:"angular_mean_abs_dev"`
	AbsMeanDev        float64 `json:"abs_mean_dev"`
	MaxAngularDev     float64 `json:"max_angular_dev"`
	ThickCount        int     `json:"thick_count"`
	ThinCount         int     `json:"thin_count"`
	FeatureCount      int     `json:"feature_count"`
}

// partition accumulates signed and absolute deviation sums for one group of features.
type partition struct {
	n      int
	sum    float64
	absSum float64
	absMax float64
}

func (p *partition) add(dev float64) {
	p.n++
	p.sum += dev
	a := math.Abs(dev)
	p.absSum += a
	if a > p.absMax {
		p.absMax = a
	}
}

func (p partition) mean() float64    { return p.sum / float64(atLeastOne(p.n)) }
func (p partition) absMean() float64 { return p.absSum / float64(atLeastOne(p.n)) }

// Compute derives the engineered metrics. Empty input yields a zero record.
func Compute(features []cmm.Feature) Engineered {
	total := float64(atLeastOne(len(features)))

	var all, thick, thin, angular partition
	var pos, neg, oot int
	for _, f := range features {
		all.add(f.Deviation)
		switch f.Section {
		case cmm.SectionThick:
			thick.add(f.Deviation)
		case cmm.SectionAngular:
			angular.add(f.Deviation)
		default:
			thin.add(f.Deviation)
		}
		switch {
		case f.Deviation > 0:
			pos++
		case f.Deviation < 0:
			neg++
		}
		if f.OutOfTolerance {
			oot++
		}
	}

	mean := all.mean()
	var sq float64
	for _, f := range features {
		d := f.Deviation - mean
		sq += d * d
	}

	return Engineered{
		ThicknessRatio:    thicknessRatio(thick, thin, angular),
		StdDev:            math.Sqrt(sq / total),
		OOTCount:          oot,
		OOTRatio:          float64(oot) / total,
		MeanDeviation:     mean,
		Directionality:    float64(max(pos, neg)) / total,
		ThickMeanDev:      thick.mean(),
		ThinMeanDev:       thin.mean(),
		AngularMeanAbsDev: angular.absMean(),
		AbsMeanDev:        all.absMean(),
		MaxAngularDev:     angular.absMax,
		ThickCount:        thick.n,
		ThinCount:         thin.n,
		FeatureCount:      len(features),
	}
}

// thicknessRatio compares heavy-section error against the average error of
// the non-empty light partitions (thin/structural and angular).
func thicknessRatio(thick, thin, angular partition) float64 {
	thickAbs := thick.absMean()
	thinAbs, angAbs := thin.absMean(), angular.absMean()
	if thinAbs+angAbs < NoiseFloor {
		return thickAbs / NoiseFloor
	}
	groups := 0
	if thin.n > 0 {
		groups++
	}
	if angular.n > 0 {
		groups++
	}
	return thickAbs / ((thinAbs + angAbs) / float64(atLeastOne(groups)))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
