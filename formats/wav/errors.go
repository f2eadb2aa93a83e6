// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/vemo/audio"
)

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")

	// ErrInvalidAudioBuffer is the only error Encode returns. It is the same
	// value as audio.ErrInvalidBuffer so either matches with errors.Is.
	ErrInvalidAudioBuffer = audio.ErrInvalidBuffer
)
