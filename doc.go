// SPDX-License-Identifier: EPL-2.0

// Package vemo turns recorded audio into the canonical 16-bit PCM WAV bytes
// the emotion inference service expects.
//
// The heavy lifting lives in subpackages:
//   - audio: the decoded buffer model, decoder registry and pipeline stages
//     (Resampler, MonoMixer, ReadBuffer)
//   - formats/wav: the canonical WAV encoder (Encode) and a PCM16 decoder
//   - formats/mp3, formats/vorbis, formats/aiff: decoders for uploads
//   - formats: a registry wired with every decoder above
//
// # Quick Start
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//
//	// 16 kHz mono WAV, ready to post
//	data, _ := vemo.Convert(src, vemo.Options{TargetRate: 16000, Mono: true})
//
// When the audio is already decoded, skip the pipeline and call wav.Encode
// on an audio.Buffer directly:
//
//	buf := audio.NewBuffer(48000, 2, frames)
//	// fill buf.Data[0] and buf.Data[1]
//	data, err := wav.Encode(buf)
//
// The relay service that forwards encoded audio to the inference server is
// built from internal/relay and internal/inference; see cmd/vemo-relay.
package vemo
