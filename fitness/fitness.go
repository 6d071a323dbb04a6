// SPDX-License-Identifier: EPL-2.0

// Package fitness scores a rendered signal against the target.
// Lower scores are better; zero is a perfect match.
package fitness

import (
	"fmt"
	"math"

	"github.com/ik5/gensound/utils"
)

// Function compares two equal-length signals.
type Function interface {
	Compare(target, proposed []int16) (int64, error)
}

// AmplitudeDiff is the sum of the absolute per-sample differences. The sum
// saturates at math.MaxInt64 instead of wrapping.
type AmplitudeDiff struct{}

func (AmplitudeDiff) Compare(target, proposed []int16) (int64, error) {
	if len(target) != len(proposed) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(target), len(proposed))
	}

	return accumulate(len(target), func(i int) int64 {
		return utils.AbsDiff16(target[i], proposed[i])
	}), nil
}

// accumulate sums n non-negative terms, stopping at math.MaxInt64.
func accumulate(n int, term func(i int) int64) int64 {
	var sum int64
	for i := range n {
		sum = utils.SaturatingAdd(sum, term(i))
		if sum == math.MaxInt64 {
			break
		}
	}

	return sum
}

// Func adapts a plain function to Function.
type Func func(target, proposed []int16) (int64, error)

func (f Func) Compare(target, proposed []int16) (int64, error) { return f(target, proposed) }
