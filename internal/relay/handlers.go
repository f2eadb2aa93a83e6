// SPDX-License-Identifier: EPL-2.0

package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ik5/vemo"
	"github.com/ik5/vemo/internal/inference"
	"github.com/julienschmidt/httprouter"
)

// uploadMemory is how much of a multipart upload is kept in memory before
// spilling to temporary files.
const uploadMemory = 8 << 20

func (s *Server) handleRootGET(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(rw, Banner)
}

// forward relays a JSON body to path on the inference service.
func (s *Server) forward(path string) httprouter.Handle {
	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeHTTPError(rw, r, bodyStatus(err), fmt.Errorf("reading request body: %w", err))
			return
		}

		if !json.Valid(body) {
			writeHTTPError(rw, r, http.StatusBadRequest, ErrInvalidJSON)
			return
		}

		s.relay(rw, r, path, body)
	}
}

// relay posts body upstream and answers 200 with the reply's JSON, whatever
// status the service used.
func (s *Server) relay(rw http.ResponseWriter, r *http.Request, path string, body []byte) {
	logger := requestLogger(r)

	resp, err := s.upstream.Forward(r.Context(), path, body)
	if err != nil {
		writeHTTPError(rw, r, http.StatusInternalServerError, err)
		return
	}
	logger.Debug("response received from inference service", "status", resp.StatusCode)

	if !resp.IsJSON() {
		writeHTTPError(rw, r, http.StatusInternalServerError,
			fmt.Errorf("%w (status %d)", ErrNonJSONUpstream, resp.StatusCode))
		return
	}

	writeHTTPRaw(rw, r, http.StatusOK, resp.Body)
}

// handleAnalyzePOST takes a multipart upload (audio file plus userId),
// converts it to canonical WAV and asks the service for a prediction.
func (s *Server) handleAnalyzePOST(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := requestLogger(r)

	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		writeHTTPError(rw, r, bodyStatus(err), fmt.Errorf("parsing upload: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeHTTPError(rw, r, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrMissingAudio, err))
		return
	}
	defer file.Close()

	dec, format, err := s.registry.Lookup(header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeHTTPError(rw, r, http.StatusUnsupportedMediaType, err)
		return
	}
	logger.Debug("decoding upload", "filename", header.Filename, "format", format, "size", header.Size)

	src, err := dec.Decode(file)
	if err != nil {
		writeHTTPError(rw, r, http.StatusUnprocessableEntity, err)
		return
	}
	defer src.Close()

	// The upload is already buffered, so conversion failures are bad audio.
	audioData, err := vemo.ConvertBase64(src, s.opts.Analyze)
	if err != nil {
		writeHTTPError(rw, r, http.StatusUnprocessableEntity, err)
		return
	}

	body, err := json.Marshal(inference.PredictRequest{
		UserID:    r.FormValue("userId"),
		AudioData: audioData,
	})
	if err != nil {
		writeHTTPError(rw, r, http.StatusInternalServerError, err)
		return
	}

	s.relay(rw, r, inference.PredictPath, body)
}

func (s *Server) handleHealthGET(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	health, err := s.upstream.Health(r.Context())
	if err != nil {
		writeHTTPError(rw, r, http.StatusInternalServerError, err)
		return
	}

	writeHTTPData(rw, r, http.StatusOK, health)
}

func handlePreflight(rw http.ResponseWriter, _ *http.Request) {
	rw.WriteHeader(http.StatusNoContent)
}

func handleNotFound(rw http.ResponseWriter, r *http.Request) {
	writeHTTPError(rw, r, http.StatusNotFound, fmt.Errorf("%w: %s", ErrNotFound, r.URL.Path))
}

func handleMethodNotAllowed(rw http.ResponseWriter, r *http.Request) {
	writeHTTPError(rw, r, http.StatusMethodNotAllowed, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path))
}

func handlePanic(rw http.ResponseWriter, r *http.Request, v any) {
	requestLogger(r).Error("handler panicked", "panic", v)
	writeHTTPError(rw, r, http.StatusInternalServerError, ErrInternal)
}
