// SPDX-License-Identifier: EPL-2.0

// Package gensound searches, by simulated evolution, for a set of simple
// waveform segments whose composite approximates a target sound.
//
// This package is the entry point for the audio side of a run: it decodes
// the target file and refuses anything that is not mono 16-bit linear PCM.
// The evolution itself lives in the subpackages.
//
// # Supported Formats
//
// Targets can be read from:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF and AIFF-C (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
//	target, err := gensound.LoadTarget("voice.wav", nil)
//	if err != nil {
//	    // unknown extension, stereo, 24-bit, float ...
//	}
//
//	ctx, _ := genetics.NewContext(len(target.Samples), target.SampleRate,
//	    10, 100, genetics.Sinusoid, genetics.Square, genetics.Saw)
//
// # Packages
//
//   - genetics: genes, individuals, populations and the gene pool
//   - express: renders an individual onto a canvas
//   - fitness: scores a composite against the target
//   - selection, crossover, mutation: the reproduction strategies
//   - stats: per-generation fitness statistics
//   - evolve: the generation controller
//   - report: progress reporters and the WAV sink
//   - config: YAML run configuration
//
// # Errors
//
// Unsupported input is reported with the sentinel errors of the audio
// package, wrapped with what was actually found:
//
//	_, err := gensound.LoadTarget("stereo.wav", nil)
//	if errors.Is(err, audio.ErrNotMono) {
//	    // only a single audio channel (mono) is supported, found: 2 channels
//	}
package gensound
