// SPDX-License-Identifier: EPL-2.0

// Package genetics holds the data model of the evolution: waveform genes,
// individuals, populations, the run Context and the Pool that draws random
// ones.
//
// A Gene is immutable. Its samples are rendered when it is created and a
// changed copy is obtained through the With methods:
//
//	g, _ := genetics.NewGene(genetics.Sinusoid, genetics.FrameRange{Start: 0, End: 3}, 44100, 1000, 11025)
//	g.Samples() // [0 1000 0 -1000]
//	louder, _ := g.WithPeakAmplitude(2000)
//
// The Pool never keeps a random source. Callers own a *rand.Rand each,
// which keeps concurrent population creation free of shared state and
// reproducible for a given seed.
package genetics
