// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files with github.com/go-audio/aiff.
//
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8, 24 and 32 bit files and AIFF-C are rejected
//	}
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory
// first. Samples come out as float32 in [-1, 1] using the same scale the WAV
// encoder uses, so a 16-bit AIFF converts to WAV without changing a single
// sample value:
//
//	buf, _ := audio.ReadBuffer(source, 4096)
//	data, _ := wav.Encode(buf)
package aiff
