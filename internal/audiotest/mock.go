// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/gensound/audio"
)

// MockSource is a test helper that generates int16 audio data with an
// arbitrary reported format.
type MockSource struct {
	sampleRate   int
	channels     int
	bitDepth     int
	encoding     audio.Encoding
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	closed       bool
	waveform     func(sample int, channel int) int16
}

// NewMockSource creates a new 16-bit PCM mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		bitDepth:     16,
		encoding:     audio.EncodingPCM,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) int16 {
		return 0
	})
}

// NewSineSource creates a mono mock source that generates a sine wave with
// the given peak amplitude.
func NewSineSource(sampleRate, totalSamples int, frequency float64, peak int16) *MockSource {
	return NewMockSource(sampleRate, 1, totalSamples, func(sample int, _ int) int16 {
		t := float64(sample) / float64(sampleRate)
		return int16(math.Round(float64(peak) * math.Sin(2*math.Pi*frequency*t)))
	})
}

// NewSliceSource creates a mono mock source replaying samples.
func NewSliceSource(sampleRate int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(sample int, _ int) int16 {
		return samples[sample]
	})
}

// WithFormat overrides the reported bit depth and encoding.
func (m *MockSource) WithFormat(bitDepth int, encoding audio.Encoding) *MockSource {
	m.bitDepth = bitDepth
	m.encoding = encoding
	return m
}

func (m *MockSource) SampleRate() int          { return m.sampleRate }
func (m *MockSource) Channels() int            { return m.channels }
func (m *MockSource) BitDepth() int            { return m.bitDepth }
func (m *MockSource) Encoding() audio.Encoding { return m.encoding }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []int16) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
