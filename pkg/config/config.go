// Package config loads and persists the application configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

const (
	configDirName  = "alltheskills"
	configFileName = "alltheskills.toml"

	// CurrentVersion is bumped when the on-disk layout changes.
	CurrentVersion = 1
)

// Config is the persisted application configuration.
type Config struct {
	Version      int                  `toml:"version"`
	DefaultScope types.SkillScope     `toml:"default_scope"`
	InstallDir   string               `toml:"install_dir"`
	CacheDir     string               `toml:"cache_dir"`
	Sources      []types.SourceConfig `toml:"sources"`
}

// Default returns the configuration used when no file exists yet.
// Relative directories are resolved against the user's home at use time.
func Default() Config {
	return Config{
		Version:      CurrentVersion,
		DefaultScope: types.ScopeUser,
		InstallDir:   ".alltheskills",
		CacheDir:     filepath.Join(".alltheskills", "cache"),
	}
}

// Dir returns the directory holding the configuration file.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", skillerrors.IO(err, "cannot determine user config directory")
	}
	return filepath.Join(base, configDirName), nil
}

// Path returns the full path of the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the configuration from its default location. A missing file is
// not an error: the default configuration is written out and returned.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		return cfg, nil
	}
	if !skillerrors.Is(err, skillerrors.KindNotFound) {
		return Config{}, err
	}

	cfg = Default()
	if err := SaveTo(path, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, skillerrors.NotFound(path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, skillerrors.Parse(err, "invalid config file %s", path)
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.DefaultScope == "" {
		cfg.DefaultScope = types.ScopeUser
	}
	return cfg, nil
}

// Save writes the configuration to its default location.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to an explicit path, creating parent
// directories as needed.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return skillerrors.IO(err, "cannot create config directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return skillerrors.IO(err, "cannot write config file %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return skillerrors.IO(err, "cannot encode config")
	}
	return nil
}

// AddSource appends a source, replacing any existing source with the same
// name.
func (c *Config) AddSource(source types.SourceConfig) {
	for i, existing := range c.Sources {
		if existing.Name == source.Name {
			c.Sources[i] = source
			return
		}
	}
	c.Sources = append(c.Sources, source)
}

// RemoveSource deletes a source by name and reports whether it existed.
func (c *Config) RemoveSource(name string) bool {
	for i, existing := range c.Sources {
		if existing.Name == name {
			c.Sources = append(c.Sources[:i], c.Sources[i+1:]...)
			return true
		}
	}
	return false
}

// Source looks up a source by name.
func (c *Config) Source(name string) (types.SourceConfig, bool) {
	for _, existing := range c.Sources {
		if existing.Name == name {
			return existing, true
		}
	}
	return types.SourceConfig{}, false
}
