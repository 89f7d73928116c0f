package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML parsing. Booleans are pointers so
// an absent key can be told apart from an explicit false.
type FileConfig struct {
	System   string `toml:"system"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Driver   string `toml:"driver"`
	Port     int    `toml:"port"`
	StateDir string `toml:"state_dir"`
	Verbose  *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.savelib/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".savelib", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("system", fc.System, &cfg.System)
	s.setString("user", fc.User, &cfg.User)
	s.setString("password", fc.Password, &cfg.Password)
	s.setString("driver", fc.Driver, &cfg.Driver)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)
	s.setInt("port", fc.Port, &cfg.Port)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
