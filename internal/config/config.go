package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDataDir overrides the default data directory; the --data-dir flag
// wins over both.
const EnvDataDir = "LIBBY_BOOK_MONITOR_DATA"

const configFileName = "config.yaml"

// DataDir resolves the data directory: flag, then environment, then
// ~/.libby-book-monitor.
func DataDir(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".libby-book-monitor")
}

// Config holds the library defaults shared by every profile: which
// catalogue to query when watch gives none, and display names for known
// library codes.
type Config struct {
	DefaultLibrary string            `yaml:"default_library"`
	Libraries      map[string]string `yaml:"libraries"`
}

func Default() Config {
	return Config{
		DefaultLibrary: "telaviv",
		Libraries: map[string]string{
			"telaviv": "Israel Digital",
		},
	}
}

// LibraryName returns the display name for a library code, or the code
// itself when unknown.
func (c Config) LibraryName(code string) string {
	if name, ok := c.Libraries[code]; ok {
		return name
	}
	return code
}

// Load reads config.yaml from the data directory, creating the directory
// and a default config on first use.
func Load(dataDir string) (Config, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("failed to create data directory %q: %w", dataDir, err)
	}

	path := filepath.Join(dataDir, configFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

func save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
