// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

const (
	// HeaderSize is the length of the canonical RIFF/WAVE/fmt/data header.
	HeaderSize = 44

	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	formatPCM      = 1
	fmtChunkSize   = 16
)

// PutHeader writes the canonical 44 byte PCM16 header into dst, which must
// be at least HeaderSize long. dataLen is the payload size in bytes.
// All integer fields are little-endian.
func PutHeader(dst []byte, sampleRate, channels int, dataLen uint32) {
	_ = dst[HeaderSize-1]

	byteRate := uint32(sampleRate) * uint32(channels) * bytesPerSample
	blockAlign := uint16(channels) * bytesPerSample

	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataLen)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(dst[20:22], formatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], byteRate)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataLen)
}
