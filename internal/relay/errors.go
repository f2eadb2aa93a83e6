// SPDX-License-Identifier: EPL-2.0

package relay

import "errors"

var (
	ErrInvalidJSON      = errors.New("request body is not valid JSON")
	ErrMissingAudio     = errors.New("missing audio file")
	ErrNonJSONUpstream  = errors.New("inference service returned a non-JSON response")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrInternal         = errors.New("internal server error")
)
