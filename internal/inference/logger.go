// SPDX-License-Identifier: EPL-2.0

package inference

import (
	"fmt"
	"log/slog"
	"strings"
)

// slogAdapter routes resty's printf style logging into slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (l slogAdapter) Errorf(format string, v ...any) {
	l.logger.Error(message(format, v))
}

func (l slogAdapter) Warnf(format string, v ...any) {
	l.logger.Warn(message(format, v))
}

func (l slogAdapter) Debugf(format string, v ...any) {
	l.logger.Debug(message(format, v))
}

func message(format string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
