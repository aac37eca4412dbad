package format

import (
	"fmt"
	"math"
)

// Dev formats a deviation in mm with an explicit sign and three decimals.
func Dev(v float64) string {
	if v == 0 || math.Abs(v) < 0.0005 {
		return "0.000"
	}
	return fmt.Sprintf("%+.3f", v)
}

// Fixed formats v with the given number of decimals.
func Fixed(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

// Percent formats a fraction in [0, 1] as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
