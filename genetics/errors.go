// SPDX-License-Identifier: EPL-2.0

package genetics

import "errors"

var (
	ErrNoWaveforms         = errors.New("at least one waveform type is required")
	ErrUnsupportedWaveform = errors.New("unsupported waveform type")
	ErrTooFewFrames        = errors.New("target must have at least two frames")
	ErrInvalidCount        = errors.New("invalid count")
	ErrInvalidFrameRate    = errors.New("frame rate must be positive")
	ErrInvalidFrameRange   = errors.New("invalid frame range")
	ErrInvalidAmplitude    = errors.New("peak amplitude must be in [0, 32767]")
	ErrInvalidFrequency    = errors.New("frequency must be positive and finite")
)
