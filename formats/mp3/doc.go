// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 audio with github.com/hajimehoshi/go-mp3.
//
//	source, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always emits 16-bit interleaved stereo, so Channels is 2 even for
// mono recordings. Combine with audio.NewMonoMixer when a single channel is
// needed.
package mp3
