package cliconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotenv loads a .env file from the working directory into the
// process environment, if one exists. Existing variables win, so a real
// environment always overrides the file. Credentials commonly live here
// rather than in the TOML config.
func LoadDotenv() error {
	if !FileExists(".env") {
		return nil
	}
	return godotenv.Load()
}

// ApplyEnvConfig applies configuration from environment variables (SAVELIB_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("system", os.Getenv("SAVELIB_SYSTEM"), &cfg.System)
	s.setString("user", os.Getenv("SAVELIB_USER"), &cfg.User)
	s.setString("password", os.Getenv("SAVELIB_PASSWORD"), &cfg.Password)
	s.setString("driver", os.Getenv("SAVELIB_DRIVER"), &cfg.Driver)
	s.setString("state-dir", os.Getenv("SAVELIB_STATE_DIR"), &cfg.StateDir)

	if err := s.setIntFromString("port", os.Getenv("SAVELIB_PORT"), &cfg.Port); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("SAVELIB_VERBOSE"), &cfg.Verbose)

	return nil
}
