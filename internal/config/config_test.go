package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	Reset()
	t.Cleanup(Reset)
	return tmpDir
}

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	got := Get("missing", "default")
	require.Equal(t, "default", got)
}

func TestDefaults(t *testing.T) {
	tmpDir := isolate(t)
	Load()

	require.Equal(t, filepath.Join(tmpDir, "config", "noshow"), Get("config_dir", ""))
	require.Equal(t, filepath.Join(tmpDir, "state", "noshow"), Get("state_dir", ""))
	require.Equal(t, filepath.Join(tmpDir, "state", "noshow", "records.db"), Get("db_path", ""))
	require.Equal(t, ".", Get("export_dir", ""))
	require.Equal(t, "keep", Get("unresolved_policy", ""))
	require.Equal(t, "xlsx", Get("export_format", ""))
	require.Equal(t, "", Get("catalog_path", "unset"))
	require.False(t, GetBool("logging_enabled", true))
	require.Equal(t, 10, GetInt("logging_max_files", 0))
}

// Environment wins over the config file, which wins over defaults.
func TestConfigLoadingPrecedence(t *testing.T) {
	tmpDir := isolate(t)

	configFile := filepath.Join(tmpDir, "custom.toml")
	configContent := `
unresolved_policy = "elide"
export_format = "csv"
logging_max_files = 3
catalog_path = "/srv/catalog.yaml"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	t.Setenv("NOSHOW_CONFIG_PATH", configFile)
	t.Setenv("NOSHOW_EXPORT_FORMAT", "xlsx")
	t.Setenv("NOSHOW_DB_PATH", "/tmp/other.db")

	Load()

	require.Equal(t, "xlsx", Get("export_format", ""), "Environment should override config file")
	require.Equal(t, "/tmp/other.db", Get("db_path", ""))
	require.Equal(t, "elide", Get("unresolved_policy", ""), "Config file value should be used when not overridden by env")
	require.Equal(t, 3, GetInt("logging_max_files", 0))
	require.Equal(t, "/srv/catalog.yaml", Get("catalog_path", ""))
}

func TestEnvironmentVariableCasing(t *testing.T) {
	isolate(t)
	t.Setenv("NOSHOW_UNRESOLVED_POLICY", "ELIDE")
	t.Setenv("NOSHOW_EXPORT_FORMAT", "Csv")
	t.Setenv("NOSHOW_DEBUG", "yes")

	Load()

	require.Equal(t, "elide", Get("unresolved_policy", ""))
	require.Equal(t, "csv", Get("export_format", ""))
	require.Equal(t, "true", Get("debug", ""))
	require.True(t, GetBool("debug", false))
}

func TestInvalidConfigValues(t *testing.T) {
	testCases := []struct {
		name          string
		configKey     string
		defaultValue  string
		configSnippet string
	}{
		{name: "invalid_policy", configKey: "unresolved_policy", defaultValue: "keep", configSnippet: `unresolved_policy = "drop"`},
		{name: "invalid_export_format", configKey: "export_format", defaultValue: "xlsx", configSnippet: `export_format = "pdf"`},
		{name: "zero_max_files", configKey: "logging_max_files", defaultValue: "10", configSnippet: `logging_max_files = 0`},
		{name: "invalid_bool", configKey: "quiet", defaultValue: "false", configSnippet: `quiet = "maybe"`},
		{name: "invalid_dedup_criteria", configKey: "dedup_criteria", defaultValue: "reason_text", configSnippet: `dedup_criteria = "message"`},
		{name: "invalid_dedup_window", configKey: "dedup_window", defaultValue: "", configSnippet: `dedup_window = "soon"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := isolate(t)
			configFile := filepath.Join(tmpDir, "config.toml")
			require.NoError(t, os.WriteFile(configFile, []byte(tc.configSnippet), 0644))
			t.Setenv("NOSHOW_CONFIG_PATH", configFile)

			oldStderr := os.Stderr
			r, w, _ := os.Pipe()
			os.Stderr = w

			Load()

			w.Close()
			os.Stderr = oldStderr

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)

			require.Equal(t, tc.defaultValue, Get(tc.configKey, ""), "Invalid value should be reset to default")
			require.Contains(t, buf.String(), "Warning:")
		})
	}
}

func TestGetDuration(t *testing.T) {
	isolate(t)
	t.Setenv("NOSHOW_DEDUP_WINDOW", "90s")
	Load()

	require.Equal(t, 90*time.Second, GetDuration("dedup_window", 0))
	require.Equal(t, "reason_text", Get("dedup_criteria", ""))
	require.Equal(t, time.Minute, GetDuration("missing", time.Minute))

	t.Setenv("NOSHOW_DEDUP_WINDOW", "")
	Load()
	require.Equal(t, time.Duration(0), GetDuration("dedup_window", 0))
}

func TestConfigSampleCreation(t *testing.T) {
	tmpDir := isolate(t)

	Load()

	sampleConfigPath := filepath.Join(tmpDir, "config", "noshow", "config.toml")
	require.FileExists(t, sampleConfigPath, "Sample config should be created")

	content, err := os.ReadFile(sampleConfigPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "# noshow configuration")
	require.Contains(t, string(content), "unresolved_policy")
	require.Contains(t, string(content), "export_format")
	require.Contains(t, string(content), "state_dir")
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	require.Panics(t, func() {
		RegisterValidator("debug", BoolValidator())
	})
}

func TestEnumValidator(t *testing.T) {
	v := EnumValidator("keep", "elide")

	got, err := v("unresolved_policy", "", "keep")
	require.NoError(t, err)
	require.Equal(t, "keep", got)

	got, err = v("unresolved_policy", "Elide", "keep")
	require.NoError(t, err)
	require.Equal(t, "elide", got)
}

func TestDurationValidator(t *testing.T) {
	v := DurationValidator(true)

	got, err := v("dedup_window", "", "")
	require.NoError(t, err)
	require.Equal(t, "", got)

	got, err = v("dedup_window", "90s", "")
	require.NoError(t, err)
	require.Equal(t, "1m30s", got)

	got, err = DurationValidator(false)("dedup_window", "", "5m0s")
	require.NoError(t, err)
	require.Equal(t, "5m0s", got)
}
