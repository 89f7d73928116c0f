package main

import (
	"github.com/ibmi-tools/savelib"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// newClient connects to the configured system with the CLI's logger.
func newClient() (*savelib.Client, error) {
	return savelib.Connect(savelib.Config{
		System:   cfg.System,
		User:     cfg.User,
		Password: cfg.Password,
		Driver:   cfg.Driver,
		Port:     cfg.Port,
	}, savelib.WithLogger(log.NewZerologAdapterWithLogger(logger)))
}
