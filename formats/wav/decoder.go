// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/vemo/audio"
	"github.com/ik5/vemo/utils"
)

// pcmReader is the part of gowav.Decoder the source needs; tests fake it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	remaining  int // samples left in the data chunk
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.intBuf.Data) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	want := min(len(dst), s.remaining)
	if cap(s.intBuf.Data) < want {
		s.intBuf.Data = make([]int, want)
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	n = min(n, want)
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(s.intBuf.Data[i]))
	}
	s.remaining -= n

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	// go-audio reports the end of a truncated data chunk as (0, nil).
	if n == 0 {
		s.remaining = 0
		return 0, io.EOF
	}
	if s.remaining == 0 {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads 16-bit PCM WAV files. Unlike Encode it accepts any chunk
// layout (LIST, JUNK, bext before or after fmt) by walking the RIFF chunks
// with github.com/go-audio/wav.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM || dec.BitDepth != bitsPerSample {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.SampleRate == 0 || dec.SampleRate > audio.MaxSampleRate || dec.NumChans == 0 {
		return nil, fmt.Errorf("%w: %d Hz x %d channels", ErrUnsupportedWavLayout, dec.SampleRate, dec.NumChans)
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, ErrUnsupportedWavChunks
	}

	channels := int(dec.NumChans)

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		remaining:  dec.PCMChunk.Size / bytesPerSample,
		intBuf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: int(dec.SampleRate)},
			Data:           make([]int, 4096),
			SourceBitDepth: bitsPerSample,
		},
	}, nil
}
