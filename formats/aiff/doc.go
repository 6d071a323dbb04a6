// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF and AIFF-C
// files into an audio.Source yielding int16 samples.
//
// # Reported Format
//
// The decoder reports what the container declares:
//   - Channels and sample rate from the COMM chunk
//   - Bit depth as stored
//   - Encoding: plain AIFF is always PCM, AIFF-C maps its compression type
//     ("NONE", "twos" and "sowt" are PCM, "fl32"/"fl64" are float, anything
//     else is compressed)
//
// Only 16-bit PCM can be read. The format gate in audio.Validate rejects
// everything else before any samples are read; ReadSamples on such a
// source returns ErrOnlyPCM16bitSupported.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("target.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	if err := audio.Validate(source); err != nil {
//	    // stereo, 24-bit, compressed ...
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but uses big-endian byte order and stores the
// sample rate as an 80-bit float. The decoder handles these differences.
//
// # File Extensions
//
// AIFF files typically use .aif or .aiff. AIFF-C files use .aifc.
package aiff
