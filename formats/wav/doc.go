// SPDX-License-Identifier: EPL-2.0

// Package wav encodes and decodes 16-bit PCM WAV files.
//
// # Encoding
//
// Encode turns a decoded audio.Buffer into a canonical WAV file: a 44 byte
// RIFF/WAVE/fmt/data header with no extension chunks, followed by the
// samples as interleaved little-endian int16.
//
//	data, err := wav.Encode(&audio.Buffer{
//	    SampleRate:  48000,
//	    NumChannels: 2,
//	    Data:        [][]float32{left, right},
//	})
//
// Samples are clamped to [-1, 1] and scaled asymmetrically: negative values
// by 32768, the rest by 32767, truncating toward zero. -1 becomes -32768 and
// 1 becomes 32767, so the full int16 range is used without overflow.
//
// The header layout is fixed and consumers rely on it byte for byte:
//
//	offset  field            value
//	0       "RIFF"
//	4       chunk size       36 + data length
//	8       "WAVE"
//	12      "fmt "
//	16      fmt chunk size   16
//	20      audio format     1 (PCM)
//	22      channels
//	24      sample rate
//	28      byte rate        sample rate * channels * 2
//	32      block align      channels * 2
//	34      bits per sample  16
//	36      "data"
//	40      data length      frames * channels * 2
//
// WriteWAV16 writes already quantized int16 samples to an io.Writer using
// the same header.
//
// # Decoding
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(source, 4096)
//
// The decoder walks the RIFF chunks with github.com/go-audio/wav, so files
// carrying LIST or JUNK chunks decode as well. Only 16-bit PCM is accepted.
//
// # Error Handling
//
//   - ErrInvalidAudioBuffer: Encode was given a structurally invalid buffer
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: the file is not 16-bit PCM
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: missing or broken chunks
package wav
