package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsrd/cfmask-dispatcher/internal/platform"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigFile,
		"CFMASK_L8_EXECUTABLE",
		"CFMASK_LEGACY_EXECUTABLE",
		"CFMASK_LOG_LEVEL",
		"CFMASK_LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "l8cfmask", cfg.Landsat8Executable)
	assert.Equal(t, "cfmask", cfg.LegacyExecutable)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, platform.DefaultExecutables(), cfg.Executables())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `landsat8_executable: /opt/espa/bin/l8cfmask
legacy_executable: /opt/espa/bin/cfmask
log_level: debug
log_file: /tmp/cfmask.log
`)
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/espa/bin/l8cfmask", cfg.Landsat8Executable)
	assert.Equal(t, "/opt/espa/bin/cfmask", cfg.LegacyExecutable)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/cfmask.log", cfg.LogFile)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(writeConfig(t, "log_level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, "l8cfmask", cfg.Landsat8Executable)
	assert.Equal(t, "cfmask", cfg.LegacyExecutable)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `landsat8_executable: from-file-l8
legacy_executable: from-file-legacy
`)
	t.Setenv("CFMASK_L8_EXECUTABLE", "from-env-l8")
	t.Setenv("CFMASK_LOG_LEVEL", "error")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env-l8", cfg.Landsat8Executable)
	assert.Equal(t, "from-file-legacy", cfg.LegacyExecutable)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadFile(writeConfig(t, "landsat8_executable: [unterminated\n"))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("bad level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CFMASK_LOG_LEVEL", "chatty")
		_, err := Load()
		assert.ErrorContains(t, err, "log_level")
	})
}
