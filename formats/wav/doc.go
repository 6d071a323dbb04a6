// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	if err := audio.Validate(source); err != nil {
//	    // stereo, 24-bit, float...
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder accepts any WAV that go-audio can parse and reports its
// channel count, bit depth and encoding as found. Only 16-bit PCM data can
// be read through ReadSamples.
//
// # Writing WAV Files
//
// WriteWAV16 encodes mono 16-bit PCM to an io.WriteSeeker, WriteFile does
// the same to a path, replacing any previous file atomically:
//
//	err := wav.WriteFile("song-evolved-fittest.wav", 44100, samples)
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: ReadSamples on a non 16-bit PCM stream
//   - ErrUnsupportedWavChunks: No data chunk could be located
//   - ErrInvalidSampleRate: WriteWAV16 with a non positive rate
package wav
