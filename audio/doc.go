// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level contracts shared by the format
// decoders and the evolution engine.
//
// This package contains:
//   - Source interface for audio input
//   - Decoder interface and a format Registry
//   - Validate, the gate that only lets mono 16-bit linear PCM through
//
// # Source Interface
//
// The Source interface is the foundation of target loading:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    Encoding() Encoding
//	    ReadSamples(dst []int16) (int, error)
//	    Close() error
//	}
//
// Decoders report the format of the container faithfully, even when it is
// a format the engine cannot use. Rejecting it is the job of Validate, so
// the error message always names what was actually found.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV")
//
// Keys are case insensitive and may carry the leading dot of a file
// extension.
//
// # Validation
//
//	if err := audio.Validate(src); err != nil {
//	    if errors.Is(err, audio.ErrNotMono) {
//	        // stereo input
//	    }
//	}
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available.
// Other errors indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
