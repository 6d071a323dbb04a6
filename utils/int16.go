// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampInt16 saturates x to the int16 range.
func ClampInt16(x int64) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	} else if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}

// RoundInt16 rounds x half away from zero and saturates it to the int16
// range. NaN maps to 0.
func RoundInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	x = math.Round(x)
	if x > math.MaxInt16 {
		return math.MaxInt16
	} else if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}
