// SPDX-License-Identifier: EPL-2.0

package evolve

import "errors"

var (
	ErrMissingStrategy = errors.New("strategy is required")
	ErrInvalidContext  = errors.New("run context is not initialized")
	ErrTargetLength    = errors.New("target length differs from the context frame count")
	ErrStopped         = errors.New("engine is stopped")
	ErrPopulationSize  = errors.New("next population size differs from the population count")
)
