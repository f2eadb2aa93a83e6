// SPDX-License-Identifier: EPL-2.0

package vemo

import (
	"encoding/base64"
	"fmt"

	"github.com/ik5/vemo/audio"
	"github.com/ik5/vemo/formats/wav"
)

// DefaultBufferSize is the read size used when Options.BufferSize is zero.
const DefaultBufferSize = 4096

// Options controls the Convert pipeline. The zero value keeps the source
// sample rate and channel layout.
type Options struct {
	// TargetRate resamples to this rate in Hz. Zero keeps the source rate.
	TargetRate int

	// Mono averages all channels into one.
	Mono bool

	// BufferSize is the number of samples read per call.
	BufferSize int
}

// Convert drains src through an optional resample and mono stage and encodes
// the result as a canonical 16-bit PCM WAV file.
//
// The pipeline is:
//  1. Resample to opts.TargetRate using cubic interpolation (when set and
//     different from the source rate)
//  2. Average channels to mono (when opts.Mono is set)
//  3. Collect the samples into an audio.Buffer
//  4. Encode with wav.Encode
//
// Convert does not close src. A source that yields no audio fails with
// audio.ErrEmptySource.
//
// Example:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	defer src.Close()
//	data, err := vemo.Convert(src, vemo.Options{TargetRate: 16000, Mono: true})
func Convert(src audio.Source, opts Options) ([]byte, error) {
	buf, err := Collect(src, opts)
	if err != nil {
		return nil, err
	}

	data, err := wav.Encode(buf)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return data, nil
}

// ConvertBase64 is Convert followed by standard base64 encoding, the form the
// inference service accepts in its audioData field.
func ConvertBase64(src audio.Source, opts Options) (string, error) {
	data, err := Convert(src, opts)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Collect runs the pipeline stages of Convert and returns the decoded buffer
// without encoding it.
func Collect(src audio.Source, opts Options) (*audio.Buffer, error) {
	if opts.TargetRate < 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, opts.TargetRate)
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	stage := src
	if opts.TargetRate > 0 && opts.TargetRate != src.SampleRate() {
		r, err := audio.NewResampler(stage, opts.TargetRate)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		stage = r
	}

	if opts.Mono && stage.Channels() > 1 {
		stage = audio.NewMonoMixer(stage)
	}

	buf, err := audio.ReadBuffer(stage, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}
