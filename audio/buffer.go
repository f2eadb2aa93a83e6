// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// MaxSampleRate is the highest rate decoders accept from a file header.
const MaxSampleRate = 768000

// Buffer is a fully decoded clip held in memory, one float32 slice per
// channel. Samples are nominally in [-1, 1].
//
// All channel slices must have the same length and both SampleRate and
// NumChannels must be at least 1. Validate reports violations; nothing in
// this package repairs them.
type Buffer struct {
	SampleRate  int
	NumChannels int
	Data        [][]float32
}

// NewBuffer allocates a zeroed buffer of frames frames per channel.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{
		SampleRate:  sampleRate,
		NumChannels: channels,
		Data:        data,
	}
}

// FrameCount is the length of the first channel, or 0 for a buffer without
// channels.
func (b *Buffer) FrameCount() int {
	if b == nil || len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration is the playback length at SampleRate. Zero for a nil buffer.
func (b *Buffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.FrameCount()) * time.Second / time.Duration(b.SampleRate)
}

// Validate checks the structural contract of a Buffer: at least one channel,
// a positive sample rate, one slice per channel and a non-zero frame count
// shared by every channel. Violations wrap ErrInvalidBuffer.
func (b *Buffer) Validate() error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	case b.NumChannels < 1:
		return fmt.Errorf("%w: channel count is %d", ErrInvalidBuffer, b.NumChannels)
	case b.SampleRate < 1:
		return fmt.Errorf("%w: sample rate is %d", ErrInvalidBuffer, b.SampleRate)
	case len(b.Data) != b.NumChannels:
		return fmt.Errorf("%w: %d channel slices for %d channels", ErrInvalidBuffer, len(b.Data), b.NumChannels)
	}

	frames := len(b.Data[0])
	if frames == 0 {
		return fmt.Errorf("%w: frame count is zero", ErrInvalidBuffer)
	}

	for c, ch := range b.Data {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d", ErrInvalidBuffer, c, len(ch), frames)
		}
	}

	return nil
}

// Interleaved returns the samples frame by frame, channel varying fastest.
// The buffer is assumed valid.
func (b *Buffer) Interleaved() []float32 {
	frames := b.FrameCount()
	out := make([]float32, frames*b.NumChannels)

	for i := range frames {
		base := i * b.NumChannels
		for c := range b.NumChannels {
			out[base+c] = b.Data[c][i]
		}
	}

	return out
}
