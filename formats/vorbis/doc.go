// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis decodes to float32 natively, so samples reach the caller without an
// intermediate integer step. Browsers that record to audio/ogg produce
// Vorbis or Opus; only Vorbis is supported here.
package vorbis
