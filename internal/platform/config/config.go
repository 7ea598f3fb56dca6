package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"cyberdeck/internal/platform/logging"
)

// EnvPrefix namespaces every environment override, e.g. CYBERDECK_LOG_LEVEL.
const EnvPrefix = "cyberdeck"

type Config struct {
	Path string `yaml:"-" ignored:"true"`

	// Pinned is the ordered list of application identifiers shown first.
	// It is read once at startup and never written back.
	Pinned              []string `yaml:"pinned" envconfig:"PINNED"`
	SearchFullDirectory bool     `yaml:"search_full_directory" envconfig:"SEARCH_FULL_DIRECTORY"`
	ApplicationDirs     []string `yaml:"application_dirs" envconfig:"APPLICATION_DIRS"`
	Terminal            string   `yaml:"terminal" envconfig:"TERMINAL"`

	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
	Log       LogConfig       `yaml:"log" envconfig:"LOG"`
}

type TelemetryConfig struct {
	PowerSupplyDir  string   `yaml:"power_supply_dir" envconfig:"POWER_SUPPLY_DIR"`
	StoragePath     string   `yaml:"storage_path" envconfig:"STORAGE_PATH"`
	RemovableMounts []string `yaml:"removable_mounts" envconfig:"REMOVABLE_MOUNTS"`
	ThermalSensor   string   `yaml:"thermal_sensor" envconfig:"THERMAL_SENSOR"`
	WiFiPrefix      string   `yaml:"wifi_prefix" envconfig:"WIFI_PREFIX"`
}

type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	File        string `yaml:"file" envconfig:"FILE"`
	Development bool   `yaml:"development" envconfig:"DEV"`
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		Pinned: []string{
			"spotify",
			"org.gnome.Terminal",
			"org.gnome.Software",
			"htop",
			"org.gnome.Settings",
		},
		SearchFullDirectory: true,
		ApplicationDirs:     DefaultApplicationDirs(),
		Terminal:            defaultTerminal(),
		Telemetry: TelemetryConfig{
			PowerSupplyDir:  "/sys/class/power_supply",
			StoragePath:     "/",
			RemovableMounts: []string{"/media/", "/run/media/"},
			WiFiPrefix:      "wl",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path means DefaultPath; a missing default
// file is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}
	cfg.Path = path

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for i, id := range c.Pinned {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("pinned[%d]: identifier is empty", i)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LoggingConfig maps the log section onto the logger's own configuration.
func (c Config) LoggingConfig() logging.Config {
	out := logging.Config{
		Level:       c.Log.Level,
		Development: c.Log.Development,
		OutputPaths: []string{"stderr"},
	}
	if c.Log.File != "" {
		out.OutputPaths = []string{c.Log.File}
	}
	return out
}

func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".cyberdeck", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cyberdeck", "config.yaml")
}

// DefaultApplicationDirs lists XDG application directories in precedence
// order: the user's data home first, then each system data dir.
func DefaultApplicationDirs() []string {
	var dirs []string
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(dataDirs, ":") {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, filepath.Join(dir, "applications"))
		}
	}
	return dirs
}

func defaultTerminal() string {
	if term := os.Getenv("TERMINAL"); term != "" {
		return term
	}
	return "xterm"
}
