// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Validate checks that src carries mono, 16-bit, linear PCM samples.
// It only inspects the reported format and never reads from src.
func Validate(src Source) error {
	if ch := src.Channels(); ch != 1 {
		return fmt.Errorf("%w, found: %d channels", ErrNotMono, ch)
	}

	if bits := src.BitDepth(); bits != 16 {
		return fmt.Errorf("%w, found: %d bit", ErrUnsupportedBitDepth, bits)
	}

	if enc := src.Encoding(); enc != EncodingPCM {
		return fmt.Errorf("%w, found: %s", ErrUnsupportedEncoding, enc)
	}

	if rate := src.SampleRate(); rate <= 0 {
		return fmt.Errorf("%w, found: %d", ErrInvalidSampleRate, rate)
	}

	return nil
}
