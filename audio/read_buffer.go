// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxIdleReads bounds how many (0, nil) reads ReadBuffer tolerates in a row.
const maxIdleReads = 100

// ReadBuffer drains src into a de-interleaved Buffer.
//
// bufferSize is the read chunk in samples; it is rounded down to a multiple
// of the channel count (and never below one frame). A trailing partial frame
// is dropped. A source that ends before producing a single frame returns
// ErrEmptySource.
//
// ReadBuffer does not close src.
func ReadBuffer(src Source, bufferSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count is %d", ErrInvalidBuffer, channels)
	}
	if src.SampleRate() < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, src.SampleRate())
	}

	bufferSize -= bufferSize % channels
	if bufferSize < channels {
		bufferSize = channels
	}

	// Collect interleaved samples first, then split once the length is known.
	// The capacity follows the read chunk; header values are untrusted.
	interleaved := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)
	idle := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
			idle = 0
		} else if err == nil {
			idle++
			if idle >= maxIdleReads {
				return nil, fmt.Errorf("%w", io.ErrNoProgress)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	frames := len(interleaved) / channels
	if frames == 0 {
		return nil, ErrEmptySource
	}

	out := NewBuffer(src.SampleRate(), channels, frames)
	for i := range frames {
		base := i * channels
		for c := range channels {
			out.Data[c][i] = interleaved[base+c]
		}
	}

	return out, nil
}

// bufferSource replays a Buffer as an interleaved Source.
type bufferSource struct {
	buf   *Buffer
	frame int
}

// NewBufferSource exposes b as a Source so it can feed a Resampler or
// MonoMixer.
func NewBufferSource(b *Buffer) Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels
	total := s.buf.FrameCount()
	if s.frame >= total {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, total-s.frame)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.Data[c][s.frame+f]
		}
	}
	s.frame += frames

	if s.frame >= total {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}
