// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio model and the streaming
// building blocks around it.
//
//   - Source: interleaved float32 stream, implemented by every decoder
//   - Buffer: a decoded clip, one float32 slice per channel
//   - ReadBuffer: drains a Source into a Buffer
//   - Resampler and MonoMixer: optional pipeline stages
//   - Registry: decoder lookup by format key, file extension or MIME type
//
// # Buffer
//
// A Buffer is what the WAV encoder consumes:
//
//	buf := &audio.Buffer{
//	    SampleRate:  44100,
//	    NumChannels: 2,
//	    Data:        [][]float32{left, right},
//	}
//	if err := buf.Validate(); err != nil {
//	    // err wraps ErrInvalidBuffer
//	}
//
// All channels must have the same, non-zero length. Validate reports
// violations; nothing here repairs them.
//
// # Pipelines
//
//	resampler, err := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//	buf, err := audio.ReadBuffer(mono, 4096)
//
// Sources return io.EOF, possibly together with the last samples, when the
// stream is finished.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{}, "audio/wav", "audio/x-wav")
//	decoder, format, err := registry.Lookup("clip.webm", "audio/wav")
//
// Lookup tries the file extension first and the MIME type second.
package audio
