// Package logging builds the application logger with charmbracelet/log.
//
// Development builds write to stderr. Builds tagged "release" append to the
// log file under the application directory instead, since a release binary
// usually runs without a terminal attached to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const timeFormat = "2006-01-02 15:04:05"

// Options configures a logger.
type Options struct {
	Level   string
	LogPath string
	Prefix  string
}

// New builds a logger writing to out.
func New(out io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(out, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Prefix:          opts.Prefix,
	})
}

// Open returns the logger for this build and a function releasing its
// output. When the log file cannot be opened the logger falls back to
// stderr.
func Open(opts Options) (*log.Logger, func() error) {
	if !release || opts.LogPath == "" {
		return New(os.Stderr, opts), func() error { return nil }
	}
	f, err := openFile(opts.LogPath)
	if err != nil {
		logger := New(os.Stderr, opts)
		logger.Error("Failed to open log file", "path", opts.LogPath, "err", err)
		return logger, func() error { return nil }
	}
	return New(f, opts), f.Close
}

func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// ParseLevel maps a config value to a level. Unknown values mean info in
// release builds and debug otherwise.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(s))
	if err != nil || strings.TrimSpace(s) == "" {
		if release {
			return log.InfoLevel
		}
		return log.DebugLevel
	}
	return level
}
