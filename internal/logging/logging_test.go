package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Info("scene dispatched")

	line := buf.String()
	// timestamp, level, caller, pid, message: charm's fixed field order.
	order := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} INFO <logging_test\.go:\d+:TestNew_Format> ` +
		strconv.Itoa(os.Getpid()) + `:? scene dispatched\n$`)
	assert.Regexp(t, order, line)
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, strconv.Itoa(os.Getpid()))
	assert.Contains(t, line, "logging_test.go:")
	assert.Contains(t, line, ":TestNew_Format")
	assert.Contains(t, line, "scene dispatched")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpen(t *testing.T) {
	t.Run("stderr only", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeFn, err := Open(&buf, "debug", "")
		require.NoError(t, err)
		defer func() { assert.NoError(t, closeFn()) }()

		logger.Debug("debug line")
		assert.Contains(t, buf.String(), "debug line")
	})

	t.Run("with file", func(t *testing.T) {
		var buf bytes.Buffer
		file := filepath.Join(t.TempDir(), "cfmask.log")

		logger, closeFn, err := Open(&buf, "info", file)
		require.NoError(t, err)

		logger.Info("to both")
		require.NoError(t, closeFn())

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to both")
		assert.Contains(t, buf.String(), "to both")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := Open(&bytes.Buffer{}, "loud", "")
		assert.Error(t, err)
	})

	t.Run("unwritable file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "missing", "cfmask.log")
		_, _, err := Open(&bytes.Buffer{}, "info", file)
		assert.Error(t, err)
	})
}

func TestCallerFormatter(t *testing.T) {
	tests := []struct {
		file string
		line int
		fn   string
		want string
	}{
		{
			file: "/src/cfmask-dispatcher/internal/dispatch/dispatch.go",
			line: 71,
			fn:   "github.com/lsrd/cfmask-dispatcher/internal/dispatch.(*Dispatcher).Run",
			want: "dispatch.go:71:(*Dispatcher).Run",
		},
		{
			file: "cmd/root.go",
			line: 12,
			fn:   "github.com/lsrd/cfmask-dispatcher/cmd.runDispatch",
			want: "root.go:12:runDispatch",
		},
		{
			file: "main.go",
			line: 3,
			fn:   "main.main",
			want: "main.go:3:main",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CallerFormatter(tt.file, tt.line, tt.fn))
	}
}
