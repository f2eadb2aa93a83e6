// SPDX-License-Identifier: EPL-2.0

package inference

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream matches every non-success reply from the service.
	ErrUpstream = errors.New("inference service error")

	// ErrUnavailable wraps transport failures: refused connections,
	// timeouts, cancelled contexts.
	ErrUnavailable = errors.New("inference service unavailable")
)

// StatusError carries the service's status and its error message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d: %s", ErrUpstream, e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstream
}
