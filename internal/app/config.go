package app

import (
	"crmctl/internal/config"

	"github.com/spf13/pflag"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging and shows debug entries in the TUI log.
	Debug bool

	// ConfigPath, when set, replaces the layered user/project lookup.
	ConfigPath string

	// Flags carries the command line overrides (--backend-url, --timeout,
	// --log-level). Only flags the user set take effect.
	Flags *pflag.FlagSet

	// CrmConfig is filled in by NewApplication.
	CrmConfig *config.CrmConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string, flags *pflag.FlagSet) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Flags:      flags,
	}
}
