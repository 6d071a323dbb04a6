// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGene_SinusoidQuarterRate(t *testing.T) {
	t.Parallel()

	g, err := NewGene(Sinusoid, FrameRange{Start: 0, End: 3}, 44100, 1000, 11025)
	require.NoError(t, err)

	assert.Equal(t, []int16{0, 1000, 0, -1000}, g.Samples())
}

func TestNewGene_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		waveform  Waveform
		frames    int
		frameRate int
		peak      int16
		frequency float32
		want      []int16
	}{
		{
			name: "square", waveform: Square, frames: 8, frameRate: 8, peak: 100, frequency: 1,
			want: []int16{100, 100, 100, 100, -100, -100, -100, -100},
		},
		{
			name: "saw", waveform: Saw, frames: 8, frameRate: 8, peak: 800, frequency: 1,
			want: []int16{-800, -600, -400, -200, 0, 200, 400, 600},
		},
		{
			name: "triangle", waveform: Triangle, frames: 8, frameRate: 8, peak: 1000, frequency: 1,
			want: []int16{-1000, -500, 0, 500, 1000, 500, 0, -500},
		},
		{
			name: "dc", waveform: DC, frames: 3, frameRate: 8000, peak: 1234, frequency: 440,
			want: []int16{1234, 1234, 1234},
		},
		{
			name: "zero peak", waveform: Sinusoid, frames: 4, frameRate: 44100, peak: 0, frequency: 440,
			want: []int16{0, 0, 0, 0},
		},
		{
			name: "single frame", waveform: Square, frames: 1, frameRate: 8000, peak: 5, frequency: 100,
			want: []int16{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGene(tt.waveform, FrameRange{Start: 10, End: 10 + tt.frames - 1}, tt.frameRate, tt.peak, tt.frequency)
			require.NoError(t, err)

			assert.Equal(t, tt.want, g.Samples())
			assert.Len(t, g.Samples(), g.Range().Len())
		})
	}
}

func TestNewGene_Saturates(t *testing.T) {
	t.Parallel()

	for _, w := range []Waveform{Sinusoid, Square, Saw, Triangle, DC} {
		g, err := NewGene(w, FrameRange{Start: 0, End: 999}, 44100, math.MaxInt16, 3520)
		require.NoError(t, err, w)

		for i, s := range g.Samples() {
			require.GreaterOrEqual(t, int(s), -math.MaxInt16, "%s sample %d", w, i)
		}
	}
}

func TestNewGene_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		waveform  Waveform
		r         FrameRange
		frameRate int
		peak      int16
		frequency float32
		wantErr   error
	}{
		{"noise", Noise, FrameRange{0, 3}, 8000, 10, 440, ErrUnsupportedWaveform},
		{"unknown waveform", Waveform(42), FrameRange{0, 3}, 8000, 10, 440, ErrUnsupportedWaveform},
		{"reversed range", Sinusoid, FrameRange{5, 3}, 8000, 10, 440, ErrInvalidFrameRange},
		{"negative start", Sinusoid, FrameRange{-1, 3}, 8000, 10, 440, ErrInvalidFrameRange},
		{"zero frame rate", Sinusoid, FrameRange{0, 3}, 0, 10, 440, ErrInvalidFrameRate},
		{"negative peak", Sinusoid, FrameRange{0, 3}, 8000, -1, 440, ErrInvalidAmplitude},
		{"zero frequency", Sinusoid, FrameRange{0, 3}, 8000, 10, 0, ErrInvalidFrequency},
		{"NaN frequency", Sinusoid, FrameRange{0, 3}, 8000, 10, float32(math.NaN()), ErrInvalidFrequency},
		{"infinite frequency", Sinusoid, FrameRange{0, 3}, 8000, 10, float32(math.Inf(1)), ErrInvalidFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewGene(tt.waveform, tt.r, tt.frameRate, tt.peak, tt.frequency)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGene_WithCopiesOnWrite(t *testing.T) {
	t.Parallel()

	g, err := NewGene(Sinusoid, FrameRange{Start: 0, End: 99}, 8000, 1000, 440)
	require.NoError(t, err)
	before := append([]int16(nil), g.Samples()...)

	louder, err := g.WithPeakAmplitude(2000)
	require.NoError(t, err)
	assert.NotSame(t, g, louder)
	assert.Equal(t, int16(2000), louder.PeakAmplitude())
	assert.Equal(t, g.Frequency(), louder.Frequency())
	assert.NotEqual(t, g.Samples(), louder.Samples())

	shorter, err := g.WithRange(FrameRange{Start: 10, End: 19})
	require.NoError(t, err)
	assert.Len(t, shorter.Samples(), 10)

	square, err := g.WithWaveform(Square)
	require.NoError(t, err)
	assert.Equal(t, Square, square.Waveform())

	higher, err := g.WithFrequency(880)
	require.NoError(t, err)
	assert.Equal(t, float32(880), higher.Frequency())

	// The original is untouched
	assert.Equal(t, before, g.Samples())
	assert.Equal(t, int16(1000), g.PeakAmplitude())
	assert.Equal(t, FrameRange{Start: 0, End: 99}, g.Range())
}

func TestGene_Equal(t *testing.T) {
	t.Parallel()

	a, err := NewGene(Saw, FrameRange{Start: 1, End: 5}, 8000, 10, 100)
	require.NoError(t, err)
	b, err := NewGene(Saw, FrameRange{Start: 1, End: 5}, 8000, 10, 100)
	require.NoError(t, err)
	c, err := b.WithPeakAmplitude(11)
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestFrameRange_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, FrameRange{Start: 3, End: 3}.Len())
	assert.Equal(t, 4, FrameRange{Start: 0, End: 3}.Len())
	assert.Equal(t, "[0, 3]", FrameRange{Start: 0, End: 3}.String())
}

func TestWaveform_String(t *testing.T) {
	t.Parallel()

	for _, w := range []Waveform{Sinusoid, Square, Saw, Triangle, Noise, DC} {
		parsed, err := ParseWaveform(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, parsed)
	}

	w, err := ParseWaveform(" Square ")
	require.NoError(t, err)
	assert.Equal(t, Square, w)

	_, err = ParseWaveform("pulse")
	require.ErrorIs(t, err, ErrUnsupportedWaveform)

	assert.Equal(t, "waveform(42)", Waveform(42).String())
	assert.False(t, Noise.Renderable())
	assert.True(t, DC.Renderable())
}

func BenchmarkNewGene(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = NewGene(Sinusoid, FrameRange{Start: 0, End: 44099}, 44100, 10000, 440)
	}
}
