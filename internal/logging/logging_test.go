package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/noshow/internal/config"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	config.Reset()
	t.Cleanup(config.Reset)
	config.Load()
	return tmp
}

func enabledConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Dir = t.TempDir()
	cfg.Command = "testcmd"
	return cfg
}

func readLastEntry(t *testing.T, dir string) map[string]any {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	data, err := os.ReadFile(filepath.Join(dir, entries[len(entries)-1].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("NOSHOW_LOGGING_ENABLED", "true")
	t.Setenv("NOSHOW_LOGGING_LEVEL", "warn")
	t.Setenv("NOSHOW_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("NOSHOW_DEBUG", "true")
	t.Setenv("NOSHOW_QUIET", "true")
	t.Setenv("NOSHOW_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level, "debug wins over quiet")

	t.Setenv("NOSHOW_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("NOSHOW_QUIET", "")
	config.Load()
	require.Equal(t, "info", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	stateDir := config.Get("state_dir", "")
	require.True(t, strings.HasPrefix(stateDir, tmp))

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(stateDir, "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)

	logger.Debug("test")
	logger.With("a", 1).Info("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledCreatesFile(t *testing.T) {
	cfg := enabledConfig(t)
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	fname := entries[0].Name()
	require.True(t, strings.HasPrefix(fname, "noshow_"))
	require.Contains(t, fname, fmt.Sprintf("_PID%d_", os.Getpid()))
	require.True(t, strings.HasSuffix(fname, "_testcmd.log"))

	info, err := os.Stat(filepath.Join(cfg.Dir, fname))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoggingWritesJSON(t *testing.T) {
	cfg := enabledConfig(t)
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("record added", "reason", "no_show", "fields", 3)
	require.NoError(t, logger.Shutdown())

	entry := readLastEntry(t, cfg.Dir)
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "record added", entry["msg"])
	require.Equal(t, float64(os.Getpid()), entry["pid"])
	require.Equal(t, "testcmd", entry["command"])
	require.Equal(t, "no_show", entry["reason"])
	require.Equal(t, float64(3), entry["fields"])
}

func TestLevelFiltersEntries(t *testing.T) {
	cfg := enabledConfig(t)
	cfg.Level = "warn"
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Shutdown())

	require.Equal(t, "kept", readLastEntry(t, cfg.Dir)["msg"])
}

func TestRedaction(t *testing.T) {
	cfg := enabledConfig(t)
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("submit", "name", "Ana Souza", "technician_name", "João", "password", "x", "reason", "no_show")
	require.NoError(t, logger.Shutdown())

	entry := readLastEntry(t, cfg.Dir)
	require.Equal(t, redacted, entry["name"])
	require.Equal(t, redacted, entry["technician_name"])
	require.Equal(t, redacted, entry["password"])
	require.Equal(t, "no_show", entry["reason"])
}

func TestRedactionEdgeCases(t *testing.T) {
	r := newRedactor()

	require.Equal(t, []any{"PASSWORD", redacted}, r.redact([]any{"PASSWORD", "secret"}))
	require.Equal(t, []any{"api-token", redacted}, r.redact([]any{"api-token", "xyz"}))
	require.Equal(t, []any{"nome.cliente", redacted}, r.redact([]any{"nome.cliente", "Ana"}))

	// Sensitive words only count as whole segments.
	require.Equal(t, []any{"filename", "a.log"}, r.redact([]any{"filename", "a.log"}))
	require.Equal(t, []any{"secretary", "value"}, r.redact([]any{"secretary", "value"}))
	require.Equal(t, []any{"key", "date_2"}, r.redact([]any{"key", "date_2"}))

	input := []any{"password", "hidden", "extra"}
	require.Equal(t, []any{"password", redacted, "extra"}, r.redact(input))
	require.Equal(t, "hidden", input[1], "input must not be modified")

	require.Empty(t, r.redact([]any{}))

	custom := newRedactor("placa")
	require.Equal(t, []any{"placa", redacted, "name", "Ana"}, custom.redact([]any{"placa", "ABC", "name", "Ana"}))
}

func TestRotationKeepsMaxFilesIncludingNewOne(t *testing.T) {
	cfg := enabledConfig(t)
	cfg.MaxFiles = 2

	for i := 0; i < 3; i++ {
		path := filepath.Join(cfg.Dir, fmt.Sprintf("noshow_20250101_12000%d_PID999_test.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		old := time.Now().Add(-time.Duration(i+1) * time.Hour)
		require.NoError(t, os.Chtimes(path, old, old))
	}
	foreign := filepath.Join(cfg.Dir, "other.log")
	require.NoError(t, os.WriteFile(foreign, nil, 0600))

	logger, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	// Newest old file (i=0) plus the new one survive; unrelated files are untouched.
	require.FileExists(t, filepath.Join(cfg.Dir, "noshow_20250101_120000_PID999_test.log"))
	require.NoFileExists(t, filepath.Join(cfg.Dir, "noshow_20250101_120001_PID999_test.log"))
	require.NoFileExists(t, filepath.Join(cfg.Dir, "noshow_20250101_120002_PID999_test.log"))
	require.FileExists(t, foreign)

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestRotateNoopWithinLimit(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("noshow_%d.log", i)), nil, 0600))
	}

	require.NoError(t, rotate(dir, 5))
	require.NoError(t, rotate(dir, 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t)
	t.Setenv("NOSHOW_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	defer ShutdownGlobal()

	path := CurrentLogFile()
	require.NotEmpty(t, path)

	Info("global info")
	Warn("global warning", "count", 1)
	require.NoError(t, ShutdownGlobal())
	require.Empty(t, CurrentLogFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "global warning")
}

func TestWith(t *testing.T) {
	cfg := enabledConfig(t)
	logger, err := Init(cfg)
	require.NoError(t, err)

	child := logger.With("reason", "no_show", "name", "Ana")
	child.Info("with context")
	require.NoError(t, child.Shutdown())
	require.NoError(t, logger.Shutdown(), "closing twice is harmless")

	entry := readLastEntry(t, cfg.Dir)
	require.Equal(t, "no_show", entry["reason"])
	require.Equal(t, redacted, entry["name"])
}

func TestLevelParsing(t *testing.T) {
	require.Equal(t, clog.DebugLevel, parseLevel("debug"))
	require.Equal(t, clog.InfoLevel, parseLevel("info"))
	require.Equal(t, clog.WarnLevel, parseLevel("warn"))
	require.Equal(t, clog.WarnLevel, parseLevel("warning"))
	require.Equal(t, clog.ErrorLevel, parseLevel("error"))
	require.Equal(t, clog.InfoLevel, parseLevel("unknown"))
}
