// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNotMono             = errors.New("only a single audio channel (mono) is supported")
	ErrUnsupportedBitDepth = errors.New("only 16-bit samples are supported")
	ErrUnsupportedEncoding = errors.New("only linear PCM encoding is supported")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrUnknownFormat       = errors.New("no decoder registered for format")
)
