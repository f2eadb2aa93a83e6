// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteWAV16 streams interleaved int16 PCM as a canonical WAV file.
// len(samples) must be a multiple of channels; an empty slice writes a
// header only file.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || channels > math.MaxUint16 || sampleRate < 1 {
		return fmt.Errorf("%w: %d Hz x %d channels", ErrInvalidAudioBuffer, sampleRate, channels)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples is not a whole number of %d channel frames", ErrInvalidAudioBuffer, len(samples), channels)
	}
	if uint64(len(samples))*bytesPerSample+36 > math.MaxUint32 {
		return fmt.Errorf("%w: too many samples", ErrInvalidAudioBuffer)
	}

	header := make([]byte, HeaderSize)
	PutHeader(header, sampleRate, channels, uint32(len(samples)*bytesPerSample))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
