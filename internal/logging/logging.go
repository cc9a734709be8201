// Package logging builds the dispatcher's logger.
//
// Every line carries a millisecond timestamp, the process id, the level, and
// the calling file, line and function, followed by the message:
//
//	2026-10-19 14:02:11.482 INFO <dispatch.go:71:(*Dispatcher).Run> 4121: >>cfmask --xml LE7...
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// TimeFormat renders timestamps with millisecond precision.
const TimeFormat = "2006-01-02 15:04:05.000"

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          strconv.Itoa(os.Getpid()),
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		ReportCaller:    true,
		CallerFormatter: CallerFormatter,
		Formatter:       log.TextFormatter,
	})
}

// Open builds a logger from textual settings. Lines always go to w; when file
// is non-empty they are appended to that file as well. The returned close
// function releases the file and is safe to call when no file was opened.
func Open(w io.Writer, level, file string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if file == "" {
		return New(w, lvl), func() error { return nil }, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(io.MultiWriter(w, f), lvl), f.Close, nil
}

// CallerFormatter renders a caller as file:line:function, with the file
// reduced to its base name and the function stripped of its package path.
func CallerFormatter(file string, line int, fn string) string {
	return fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, shortFuncName(fn))
}

func shortFuncName(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.Index(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
