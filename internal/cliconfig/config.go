// Package cliconfig holds CLI configuration for savelib with the usual
// precedence: flags override environment variables, which override the
// config file, which overrides defaults.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ibmi-tools/savelib/internal/domain"
)

// DefaultDriver is the ODBC driver name for Db2 for i connections.
const DefaultDriver = "IBM i Access ODBC Driver"

// Config holds CLI configuration for savelib.
type Config struct {
	// System is the hostname of the IBM i system. Used for both the
	// command connection and the SFTP transfer.
	System string

	// User and Password authenticate both connections.
	User     string
	Password string

	// Driver is the ODBC driver name.
	Driver string

	// Port is the SSH port for transfers. Defaults to 2222 per the host
	// environment; this is deliberate, not a typo for 22.
	Port int

	// StateDir is where backup reports are written.
	StateDir string

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Driver:   DefaultDriver,
		Port:     domain.DefaultTransferPort,
		StateDir: defaultStateDir(),
	}
}

func defaultStateDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".savelib", "reports")
	}
	return ""
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.System == "" {
		return fmt.Errorf("system is required")
	}
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.Port == 0 {
		c.Port = domain.DefaultTransferPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
