// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and Markdown reports.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

// --- Defect labels ---

var labels = map[string]string{
	"Shrinkage_Porosity": "Shrinkage Porosity",
	"Gas_Porosity":       "Gas Porosity",
	"Cold_Shut":          "Cold Shut",
	"Feature_Offset":     "Feature Offset",
	"Other_Defect":       "Other Defect",
	"Good":               "Good Part",
}

// Label returns the human-readable name for a defect label code.
// Unknown codes are returned as-is.
func Label(code string) string {
	if name, ok := labels[code]; ok {
		return name
	}
	return code
}

// LabelWithCode returns "Gas Porosity (Gas_Porosity)" format.
func LabelWithCode(code string) string {
	if name, ok := labels[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Scoring rules ---

var rules = map[string]string{
	"R1": "Good Pass",
	"R2": "Localized Shrinkage",
	"R3": "Directional Offset",
	"R4": "Random Gas Scatter",
	"R5": "Angular Cold Shut",
}

// Rule returns the human-readable name for a scoring rule ID.
// "R2" -> "Localized Shrinkage".
func Rule(id string) string {
	if name, ok := rules[id]; ok {
		return name
	}
	return id
}

// --- Engineered metrics ---

var metrics = map[string]string{
	"thickness_ratio":      "Thickness Ratio",
	"std_dev":              "Std Deviation",
	"oot_count":            "Out-of-Tolerance Count",
	"oot_ratio":            "Out-of-Tolerance Ratio",
	"mean_deviation":       "Mean Deviation",
	"directionality":       "Directionality",
	"thick_mean_dev":       "Thick-Section Mean Dev",
	"thin_mean_dev":        "Thin-Section Mean Dev",
	"angular_mean_abs_dev": "Angular Mean |Dev|",
	"abs_mean_dev":         "Mean |Dev|",
	"max_angular_dev":      "Max Angular |Dev|",
	"thick_count":          "Thick Features",
	"thin_count":           "Thin/Structural Features",
	"feature_count":        "Features",
}

// Metric returns the human-readable name for an engineered metric key.
func Metric(key string) string {
	if name, ok := metrics[key]; ok {
		return name
	}
	return key
}

// --- Section types ---

var sections = map[string]string{
	"thick":      "Thick",
	"thin":       "Thin",
	"structural": "Structural",
	"angular":    "Angular",
}

// Section returns the human-readable name for a section type.
func Section(code string) string {
	if name, ok := sections[code]; ok {
		return name
	}
	return code
}
