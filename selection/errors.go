// SPDX-License-Identifier: EPL-2.0

package selection

import "errors"

var (
	ErrInvalidCutoff   = errors.New("cutoff must be in [0, 1]")
	ErrInvalidBias     = errors.New("bias must be in [0, 1]")
	ErrEmptyPopulation = errors.New("cannot select from an empty population")
	ErrNoRandomSource  = errors.New("random source is required")
)
