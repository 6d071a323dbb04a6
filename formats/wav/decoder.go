// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/gensound/audio"
)

// WAVE format tags from the fmt chunk.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	encoding   audio.Encoding
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int          { return s.sampleRate }
func (s *wavSource) Channels() int            { return s.channels }
func (s *wavSource) BitDepth() int            { return s.bitDepth }
func (s *wavSource) Encoding() audio.Encoding { return s.encoding }
func (s *wavSource) Close() error             { return nil }

func (s *wavSource) ReadSamples(dst []int16) (int, error) {
	if s.bitDepth != 16 || s.encoding != audio.EncodingPCM {
		return 0, ErrOnlyPCM16bitSupported
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	// 16-bit data always fits, no clamping needed
	for i := range n {
		dst[i] = int16(s.intBuf.Data[i])
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

func encodingOf(tag uint16) audio.Encoding {
	switch tag {
	case formatPCM:
		return audio.EncodingPCM
	case formatIEEEFloat:
		return audio.EncodingFloat
	case formatExtensible:
		// The real sub format lives in the extension, which go-audio does
		// not expose.
		return audio.EncodingUnknown
	default:
		return audio.EncodingCompressed
	}
}

type Decoder struct{}

// Decode parses the RIFF/WAVE headers and returns a Source positioned at
// the start of the PCM data. The format is reported as found; use
// audio.Validate to reject what the caller cannot handle.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		encoding:   encodingOf(dec.WavAudioFormat),
	}, nil
}
