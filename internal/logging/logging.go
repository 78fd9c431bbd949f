// Package logging configures the zerolog logger for both run modes. The
// interactive UI owns the terminal, so its logs go to a file; headless
// runs log to stderr through the console writer.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a level string to a zerolog level, defaulting to info
// for anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ResolveLevel applies the flag precedence: an explicit --log-level wins,
// then -v and -q shortcuts, then the info default. When both shortcuts are
// set, quiet wins as the more restrictive one.
func ResolveLevel(logLevel string, verbose, quiet bool) zerolog.Level {
	if logLevel != "" {
		return ParseLevel(logLevel)
	}
	if quiet {
		return zerolog.WarnLevel
	}
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// NewConsole returns a logger writing human-readable output to w.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// NewFile returns a logger appending JSON lines to path, plus a close
// function. A file that cannot be opened degrades to a disabled logger so
// the UI still runs.
func NewFile(path string, level zerolog.Level) (zerolog.Logger, func()) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }
}
