// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"testing"

	"github.com/ik5/vemo/formats/aiff"
	"github.com/ik5/vemo/formats/mp3"
	"github.com/ik5/vemo/formats/vorbis"
	"github.com/ik5/vemo/formats/wav"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	tests := []struct {
		filename    string
		contentType string
		wantFormat  string
		want        any
	}{
		{"clip.wav", "", "wav", wav.Decoder{}},
		{"clip.WAVE", "", "wave", wav.Decoder{}},
		{"blob", "audio/x-wav", "wav", wav.Decoder{}},
		{"song.mp3", "", "mp3", mp3.Decoder{}},
		{"blob", "audio/mpeg", "mp3", mp3.Decoder{}},
		{"voice.ogg", "", "ogg", vorbis.Decoder{}},
		{"blob", "audio/ogg; codecs=vorbis", "ogg", vorbis.Decoder{}},
		{"take.aif", "", "aif", aiff.Decoder{}},
		{"blob", "audio/aiff", "aiff", aiff.Decoder{}},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"|"+tt.contentType, func(t *testing.T) {
			t.Parallel()

			dec, format, err := reg.Lookup(tt.filename, tt.contentType)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("Lookup() format = %q, want %q", format, tt.wantFormat)
			}
			if dec != tt.want {
				t.Errorf("Lookup() decoder = %T, want %T", dec, tt.want)
			}
		})
	}

	if _, _, err := reg.Lookup("clip.webm", "audio/webm"); err == nil {
		t.Error("Lookup(webm) error = nil, want ErrUnknownFormat")
	}
}
