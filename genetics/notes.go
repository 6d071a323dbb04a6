// SPDX-License-Identifier: EPL-2.0

package genetics

// noteFrequencies holds one equal-tempered octave starting at A3, in Hz.
var noteFrequencies = [...]float32{
	220.000, // A
	233.082, // A#
	246.942, // B
	261.626, // C
	277.183, // C#
	293.665, // D
	311.127, // D#
	329.628, // E
	349.228, // F
	369.994, // F#
	391.995, // G
	415.305, // G#
}

const (
	// octaves bounds the octave scaling 2^[0, octaves).
	octaves = 6
	// harmonics bounds the harmonic multiplier [1, harmonics].
	harmonics = 100
)
