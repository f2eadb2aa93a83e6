// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidBuffer reports a Buffer that breaks its structural contract.
	ErrInvalidBuffer = errors.New("invalid audio buffer")

	// ErrEmptySource is returned when a Source yields no samples at all.
	ErrEmptySource = errors.New("audio source produced no samples")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	ErrUnknownFormat = errors.New("unknown audio format")
)
