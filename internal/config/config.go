// Package config builds the runtime setup of the emulator from the parsed
// command line options.
package config

import (
	"github.com/jhbabon/johnny-eight/internal/cli"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the logger shared by the engine and the frontends.
// -debug enables the per instruction trace and wins over -q.
func CreateLogger(opts cli.Options) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
