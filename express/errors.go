// SPDX-License-Identifier: EPL-2.0

package express

import "errors"

var (
	ErrGeneOutOfBounds = errors.New("gene frame range exceeds the canvas")
	ErrEmptyTarget     = errors.New("target signal is empty")
)
