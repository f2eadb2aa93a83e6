// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"mime"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", "ogg") and MIME types to decoders.
type Registry struct {
	codecs map[string]Decoder
	mimes  map[string]string

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mimes:  make(map[string]string),
		mtx:    &sync.RWMutex{},
	}
}

// Register binds d to format. Any mimeTypes given resolve to the same decoder
// through Lookup.
func (r *Registry) Register(format string, d Decoder, mimeTypes ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	format = strings.ToLower(format)
	r.codecs[format] = d
	for _, m := range mimeTypes {
		r.mimes[strings.ToLower(m)] = format
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats returns the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	return formats
}

// Lookup resolves a decoder from a file name extension first and a MIME
// content type second. Parameters on the content type (";codecs=...") are
// ignored.
func (r *Registry) Lookup(filename, contentType string) (Decoder, string, error) {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		if d, ok := r.Get(ext); ok {
			return d, strings.ToLower(ext), nil
		}
	}

	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			r.mtx.RLock()
			format, ok := r.mimes[mediaType]
			d := r.codecs[format]
			r.mtx.RUnlock()

			if ok && d != nil {
				return d, format, nil
			}
		}
	}

	return nil, "", ErrUnknownFormat
}
