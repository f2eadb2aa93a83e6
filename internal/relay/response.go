// SPDX-License-Identifier: EPL-2.0

package relay

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorResponse matches the service's own failure body.
type errorResponse struct {
	Error string `json:"error"`
}

func writeHTTPError(rw http.ResponseWriter, r *http.Request, code int, err error) {
	logger := requestLogger(r)
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", "status", code, "err", err)
	} else {
		logger.Warn("request rejected", "status", code, "err", err)
	}

	writeHTTPData(rw, r, code, errorResponse{Error: err.Error()})
}

func writeHTTPData(rw http.ResponseWriter, r *http.Request, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		requestLogger(r).Error("json encoding failed", "err", err)
		code = http.StatusInternalServerError
		body = []byte(`{"error":"json encoding failed"}`)
	}

	writeHTTPRaw(rw, r, code, body)
}

func writeHTTPRaw(rw http.ResponseWriter, r *http.Request, code int, body []byte) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	if _, err := rw.Write(body); err != nil {
		requestLogger(r).Debug("writing response failed", "err", err)
	}
}

// bodyStatus maps a failed body read to 413 or 400.
func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
