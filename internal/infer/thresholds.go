package infer

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Thresholds holds every calibrated constant the rule table reads.
type Thresholds struct {
	GoodMaxStdDev  float64 `json:"good_max_std_dev" yaml:"good_max_std_dev"`   // Good needs std_dev below this (default 0.04)
	GoodMaxAbsMean float64 `json:"good_max_abs_mean" yaml:"good_max_abs_mean"` // and |mean_deviation| below this (default 0.05)

	ShrinkageMinRatio    float64 `json:"shrinkage_min_ratio" yaml:"shrinkage_min_ratio"`     // thickness_ratio at or above (default 1.6)
	ShrinkageContraction float64 `json:"shrinkage_contraction" yaml:"shrinkage_contraction"` // thick_mean_dev below for the bonus (default -0.1)

	OffsetMinDirectionality float64 `json:"offset_min_directionality" yaml:"offset_min_directionality"` // default 0.88
	OffsetMaxRatio          float64 `json:"offset_max_ratio" yaml:"offset_max_ratio"`                   // default 1.4
	OffsetMinStdDev         float64 `json:"offset_min_std_dev" yaml:"offset_min_std_dev"`               // in-tolerance offsets need this scatter (default 0.05)

	GasMinStdDev         float64 `json:"gas_min_std_dev" yaml:"gas_min_std_dev"`               // default 0.15
	GasMaxDirectionality float64 `json:"gas_max_directionality" yaml:"gas_max_directionality"` // default 0.75

	ColdShutMinAngular float64 `json:"cold_shut_min_angular" yaml:"cold_shut_min_angular"` // max_angular_dev above (default 0.4)
	ColdShutMaxRatio   float64 `json:"cold_shut_max_ratio" yaml:"cold_shut_max_ratio"`     // default 1.2

	CriticalOOTRatio float64 `json:"critical_oot_ratio" yaml:"critical_oot_ratio"` // default 0.4
	CriticalStdDev   float64 `json:"critical_std_dev" yaml:"critical_std_dev"`     // default 0.3
	ModerateStdDev   float64 `json:"moderate_std_dev" yaml:"moderate_std_dev"`     // default 0.1
	ModerateAngular  float64 `json:"moderate_angular" yaml:"moderate_angular"`     // default 0.5
}

// DefaultThresholds returns the hand-derived thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		GoodMaxStdDev:           0.04,
		GoodMaxAbsMean:          0.05,
		ShrinkageMinRatio:       1.6,
		ShrinkageContraction:    -0.1,
		OffsetMinDirectionality: 0.88,
		OffsetMaxRatio:          1.4,
		OffsetMinStdDev:         0.05,
		GasMinStdDev:            0.15,
		GasMaxDirectionality:    0.75,
		ColdShutMinAngular:      0.4,
		ColdShutMaxRatio:        1.2,
		CriticalOOTRatio:        0.4,
		CriticalStdDev:          0.3,
		ModerateStdDev:          0.1,
		ModerateAngular:         0.5,
	}
}

// Validate reports every threshold outside its meaningful range.
func (th Thresholds) Validate() error {
	var errs []error
	nonNeg := map[string]float64{
		"good_max_std_dev":      th.GoodMaxStdDev,
		"good_max_abs_mean":     th.GoodMaxAbsMean,
		"shrinkage_min_ratio":   th.ShrinkageMinRatio,
		"offset_max_ratio":      th.OffsetMaxRatio,
		"offset_min_std_dev":    th.OffsetMinStdDev,
		"gas_min_std_dev":       th.GasMinStdDev,
		"cold_shut_min_angular": th.ColdShutMinAngular,
		"cold_shut_max_ratio":   th.ColdShutMaxRatio,
		"critical_std_dev":      th.CriticalStdDev,
		"moderate_std_dev":      th.ModerateStdDev,
		"moderate_angular":      th.ModerateAngular,
	}
	for _, name := range slices.Sorted(maps.Keys(nonNeg)) {
		if nonNeg[name] < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %g", name, nonNeg[name]))
		}
	}
	fractions := map[string]float64{
		"offset_min_directionality": th.OffsetMinDirectionality,
		"gas_max_directionality":    th.GasMaxDirectionality,
		"critical_oot_ratio":        th.CriticalOOTRatio,
	}
	for _, name := range slices.Sorted(maps.Keys(fractions)) {
		if v := fractions[name]; v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %g", name, v))
		}
	}
	return errors.Join(errs...)
}
