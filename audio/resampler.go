// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/vemo/utils"
)

// Resampler streams from src to a target sample rate using Catmull-Rom
// interpolation over a four frame window. Works on interleaved samples and
// preserves the channel count.
//
// Output frame j sits at source position j*ratio, so a clip of N frames
// yields ceil(N/ratio) frames. When the rates match the samples pass through
// unchanged. A one-pole low-pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window[1] is source frame k, window[0] is k-1, window[2] k+1, window[3] k+2.
	// Frames past either end repeat the edge frame; real marks frames read from src.
	window [4][]float32
	real   [4]bool
	k      int
	next   int // index of the next output frame

	srcBuf  []float32
	started bool
	eof     bool
	done    bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
}

// NewResampler wraps src. dstRate must be positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if src.Channels() < 1 {
		return nil, fmt.Errorf("%w: channel count is %d", ErrInvalidBuffer, src.Channels())
	}

	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads exactly one frame into dst. It reports false once the
// source is exhausted; a trailing partial frame counts as exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	for idle := 0; idle < maxIdleReads; idle++ {
		n, err := r.src.ReadSamples(r.srcBuf)
		got := n == r.channels
		if got {
			copy(dst, r.srcBuf)
			r.filter(dst)
		}

		if err == io.EOF || (n > 0 && !got) {
			r.eof = true
			return got, nil
		}
		if err != nil {
			return got, fmt.Errorf("%w", err)
		}
		if got {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w", io.ErrNoProgress)
}

func (r *Resampler) filter(frame []float32) {
	if !r.useFilter {
		return
	}
	for c := range frame {
		frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

func (r *Resampler) start() error {
	r.started = true

	got, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !got {
		r.done = true
		return nil
	}

	if r.useFilter {
		// Undo the warm-up attenuation of the very first frame.
		copy(r.window[1], r.srcBuf)
		copy(r.filterState, r.srcBuf)
	}

	copy(r.window[0], r.window[1])
	r.real[1] = true

	for i := 2; i < 4; i++ {
		if r.real[i], err = r.readFrame(r.window[i]); err != nil {
			return err
		}
		if !r.real[i] {
			copy(r.window[i], r.window[i-1])
		}
	}

	return nil
}

// advance moves the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.real[:], r.real[1:])
	r.window[3] = first
	r.k++

	got, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.real[3] = got
	if !got {
		copy(r.window[3], r.window[2])
	}

	if !r.real[1] {
		r.done = true
	}
	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.started {
		if err := r.start(); err != nil {
			return 0, err
		}
	}

	framesNeeded := len(dst) / r.channels
	written := 0

	for written < framesNeeded && !r.done {
		pos := float64(r.next) * r.ratio
		k := int(math.Floor(pos))

		for r.k < k && !r.done {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if r.done {
			break
		}

		x := float32(pos - float64(k))
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.next++
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}
