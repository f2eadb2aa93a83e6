// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/vemo/audio"
	"github.com/ik5/vemo/utils"
)

// Encode converts buf into a canonical 16-bit PCM WAV file.
//
// The result is exactly HeaderSize + frames*channels*2 bytes: the header from
// PutHeader followed by the samples interleaved frame by frame. Each sample
// is quantized with utils.Float32ToInt16, so values outside [-1, 1] are
// clamped rather than rejected.
//
// A structurally invalid buffer (no frames, no channels, ragged channels, or
// sizes the header fields cannot hold) returns ErrInvalidAudioBuffer.
// Encode keeps no reference to buf or to the returned slice.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	channels := buf.NumChannels
	frames := buf.FrameCount()

	if channels > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d channels do not fit the header", ErrInvalidAudioBuffer, channels)
	}
	if uint64(buf.SampleRate)*uint64(channels)*bytesPerSample > math.MaxUint32 {
		return nil, fmt.Errorf("%w: byte rate of %d Hz x %d channels overflows", ErrInvalidAudioBuffer, buf.SampleRate, channels)
	}

	dataLen := uint64(frames) * uint64(channels) * bytesPerSample
	if dataLen+36 > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes of PCM data do not fit the header", ErrInvalidAudioBuffer, dataLen)
	}

	out := make([]byte, HeaderSize+int(dataLen))
	PutHeader(out, buf.SampleRate, channels, uint32(dataLen))

	off := HeaderSize
	for i := range frames {
		for c := range channels {
			binary.LittleEndian.PutUint16(out[off:off+2], uint16(utils.Float32ToInt16(buf.Data[c][i])))
			off += 2
		}
	}

	return out, nil
}
