package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberdeck/internal/platform/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, []string{"spotify", "org.gnome.Terminal", "org.gnome.Software", "htop", "org.gnome.Settings"}, cfg.Pinned)
	assert.True(t, cfg.SearchFullDirectory)
	assert.Equal(t, "/", cfg.Telemetry.StoragePath)
	assert.Equal(t, "/sys/class/power_supply", cfg.Telemetry.PowerSupplyDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Pinned, cfg.Pinned)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "cyberdeck", "config.yaml"), cfg.Path)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
pinned:
  - firefox
  - org.gnome.Nautilus
search_full_directory: false
telemetry:
  storage_path: /home
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"firefox", "org.gnome.Nautilus"}, cfg.Pinned)
	assert.False(t, cfg.SearchFullDirectory)
	assert.Equal(t, "/home", cfg.Telemetry.StoragePath)
	assert.Equal(t, "/sys/class/power_supply", cfg.Telemetry.PowerSupplyDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CYBERDECK_PINNED", "foot,firefox")
	t.Setenv("CYBERDECK_SEARCH_FULL_DIRECTORY", "false")
	t.Setenv("CYBERDECK_LOG_LEVEL", "warn")
	t.Setenv("CYBERDECK_LOG_FILE", "/tmp/cyberdeck.log")
	t.Setenv("CYBERDECK_TELEMETRY_THERMAL_SENSOR", "coretemp")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"foot", "firefox"}, cfg.Pinned)
	assert.False(t, cfg.SearchFullDirectory)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "coretemp", cfg.Telemetry.ThermalSensor)
	assert.Equal(t, []string{"/tmp/cyberdeck.log"}, cfg.LoggingConfig().OutputPaths)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := config.Default()
	cfg.Pinned = []string{"firefox", "  "}
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Log.Level = "shouting"
	assert.Error(t, cfg.Validate())
}

func TestDefaultApplicationDirsHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data/home")
	t.Setenv("XDG_DATA_DIRS", "/opt/share:/usr/share")

	assert.Equal(t, []string{
		"/data/home/applications",
		"/opt/share/applications",
		"/usr/share/applications",
	}, config.DefaultApplicationDirs())
}
