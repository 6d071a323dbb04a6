// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// SaturatingAdd returns a+b for non-negative operands, or math.MaxInt64 when
// the sum would overflow.
func SaturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// AbsDiff16 returns |a-b| widened so that it never clips.
func AbsDiff16(a, b int16) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}

	return d
}
