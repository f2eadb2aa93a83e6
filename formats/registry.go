// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder in formats/* into one registry.
package formats

import (
	"github.com/ik5/vemo/audio"
	"github.com/ik5/vemo/formats/aiff"
	"github.com/ik5/vemo/formats/mp3"
	"github.com/ik5/vemo/formats/vorbis"
	"github.com/ik5/vemo/formats/wav"
)

// NewRegistry returns a registry that resolves the usual file extensions and
// the MIME types browsers attach to uploads.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{}, "audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave")
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{}, "audio/mpeg", "audio/mp3")
	reg.Register("ogg", vorbis.Decoder{}, "audio/ogg", "audio/vorbis", "application/ogg")
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{}, "audio/aiff", "audio/x-aiff")
	reg.Register("aif", aiff.Decoder{})

	return reg
}
