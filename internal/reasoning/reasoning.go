// Package reasoning turns a winning hypothesis into root-cause and
// remediation text.
package reasoning

import (
	"fmt"

	"diecast/internal/infer"
	"diecast/internal/metrics"
)

// Explain returns the fixed-template root cause and recommended action for label.
func Explain(label infer.Label, m metrics.Engineered) (rootCause, action string) {
	switch label {
	case infer.FeatureOffset:
		rootCause = fmt.Sprintf("Systematic dimensional offset: %.0f%% of deviations share one direction "+
			"(directionality %.2f) with uniform error across sections (thickness ratio %.2f). "+
			"Points to die shift, fixture misalignment or a datum/probe calibration error rather than a casting defect.",
			m.Directionality*100, m.Directionality, m.ThicknessRatio)
		action = "Verify die alignment and locating pins, re-check the CMM datum setup and probe qualification, " +
			"then apply a tool offset correction and re-measure a confirmation part."
	case infer.ShrinkagePorosity:
		rootCause = fmt.Sprintf("Shrinkage porosity in heavy sections: thick-section error is %.2fx the light-section error "+
			"with a mean thick-section deviation of %.3f mm, consistent with volumetric contraction during solidification "+
			"where feeding was insufficient.",
			m.ThicknessRatio, m.ThickMeanDev)
		action = "Increase intensification pressure and hold time, review gate and overflow placement for the thick sections, " +
			"check local die temperature (add cooling or squeeze pins), and section the part to confirm internal voids."
	case infer.GasPorosity:
		rootCause = fmt.Sprintf("Gas porosity: high random scatter (std dev %.3f mm) with no dominant direction "+
			"(directionality %.2f), typical of entrapped air, lubricant vapour or hydrogen distributed through the casting.",
			m.StdDev, m.Directionality)
		action = "Improve die venting and vacuum level, reduce die lubricant quantity, check melt degassing and hydrogen content, " +
			"and review the shot profile to reduce turbulence in the first phase."
	case infer.ColdShut:
		rootCause = fmt.Sprintf("Cold shut / flow-line defect: angular deviation reaches %.3f (thickness ratio %.2f), "+
			"indicating metal fronts met without fully fusing, distorting angular and draft features.",
			m.MaxAngularDev, m.ThicknessRatio)
		action = "Raise melt and die temperature, increase fill speed at the gate, shorten the flow path or add overflows " +
			"where fronts meet, and inspect the affected surfaces for visible laps."
	case infer.Good:
		rootCause = fmt.Sprintf("No defect signature: all features in tolerance with low scatter (std dev %.3f mm) "+
			"and negligible mean deviation (%.3f mm).",
			m.StdDev, m.MeanDeviation)
		action = "No corrective action required. Continue standard sampling frequency."
	default:
		rootCause = fmt.Sprintf("Deviation pattern does not match a known casting-defect signature "+
			"(std dev %.3f mm, directionality %.2f, thickness ratio %.2f).",
			m.StdDev, m.Directionality, m.ThicknessRatio)
		action = "Review the measurement program and raw data manually, check for handling damage or machining issues, " +
			"and escalate to process engineering if the pattern repeats."
	}
	return rootCause, action
}
