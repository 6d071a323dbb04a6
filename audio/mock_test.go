// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// mockSource is a test helper that reports an arbitrary format and
// generates int16 samples from a waveform function.
type mockSource struct {
	sampleRate   int
	channels     int
	bitDepth     int
	encoding     Encoding
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) int16
}

func newMockSource(sampleRate, channels, bitDepth int, encoding Encoding, totalSamples int) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		bitDepth:     bitDepth,
		encoding:     encoding,
		totalSamples: totalSamples,
		waveform: func(sample int, channel int) int16 {
			return int16(sample)
		},
	}
}

// newSilentSource creates a mono 16-bit PCM mock source that generates silence.
func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	m := newMockSource(sampleRate, channels, 16, EncodingPCM, totalSamples)
	m.waveform = func(int, int) int16 { return 0 }
	return m
}

func (m *mockSource) SampleRate() int    { return m.sampleRate }
func (m *mockSource) Channels() int      { return m.channels }
func (m *mockSource) BitDepth() int      { return m.bitDepth }
func (m *mockSource) Encoding() Encoding { return m.encoding }
func (m *mockSource) Close() error       { return nil }

func (m *mockSource) ReadSamples(dst []int16) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

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
