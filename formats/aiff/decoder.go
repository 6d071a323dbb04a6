// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/gensound/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	encoding   audio.Encoding
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int          { return s.sampleRate }
func (s *source) Channels() int            { return s.channels }
func (s *source) BitDepth() int            { return s.bitDepth }
func (s *source) Encoding() audio.Encoding { return s.encoding }
func (s *source) Close() error             { return nil }

func (s *source) ReadSamples(dst []int16) (int, error) {
	if s.bitDepth != 16 || s.encoding != audio.EncodingPCM {
		return 0, ErrOnlyPCM16bitSupported
	}
	if len(dst) == 0 {
		return 0, nil
	}

	// Resize buffer if needed
	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = int16(s.intBuf.Data[i])
	}

	// A short read at the end of the SSND chunk, the next call reports EOF.
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

// encodingOf maps the AIFF-C compression type. Plain AIFF carries no
// compression type and is always PCM.
func encodingOf(form, compression [4]byte) audio.Encoding {
	if string(form[:]) == "AIFF" {
		return audio.EncodingPCM
	}

	switch string(compression[:]) {
	case "NONE", "twos", "sowt", "\x00\x00\x00\x00":
		return audio.EncodingPCM
	case "fl32", "FL32", "fl64", "FL64":
		return audio.EncodingFloat
	default:
		return audio.EncodingCompressed
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		encoding:   encodingOf(dec.Form, dec.Encoding),
	}, nil
}
