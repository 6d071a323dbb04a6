// SPDX-License-Identifier: EPL-2.0

package mutation

import "errors"

var (
	ErrInvalidProbability     = errors.New("probability must be in [0, 1]")
	ErrInvalidBounds          = errors.New("probability bounds must satisfy 0 <= min <= max <= 1")
	ErrProbabilityOutOfBounds = errors.New("computed mutation probability is outside its bounds")
)
