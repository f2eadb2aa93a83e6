// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LevelNone disables logging.
const LevelNone = "none"

// ParseLevel maps "error", "warn", "info" and "debug" to slog levels.
// "none" parses as well; ConfigureLogger treats it as a discard logger.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case LevelNone, "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}

// ConfigureLogger installs the default slog logger.
//
// An empty logFile logs text to stdout. Otherwise logFile is truncated and
// receives JSON records, and the opened file is returned so the caller can
// close it on shutdown:
//
//	f, err := config.ConfigureLogger(cfg.LogLevel, cfg.LogFile)
//	if f != nil {
//		defer f.Close()
//	}
func ConfigureLogger(logLevel, logFile string) (*os.File, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	if logLevel == LevelNone {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}

	opts := &slog.HandlerOptions{Level: level}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
		return nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, opts)))
	return f, nil
}
