package config

import (
	"time"
)

// CrmConfig is the top-level configuration structure for crmctl.
type CrmConfig struct {
	Backend BackendConfig `yaml:"backend"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// BackendConfig points the gateway at the customer API.
type BackendConfig struct {
	BaseURL string        `yaml:"baseURL,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"` // Zero means requests never time out
}

// UIConfig tunes the interactive front end.
type UIConfig struct {
	SearchDebounce        time.Duration `yaml:"searchDebounce,omitempty"`
	StatusMessageDuration time.Duration `yaml:"statusMessageDuration,omitempty"`
	ConfirmDeletes        *bool         `yaml:"confirmDeletes,omitempty"` // nil keeps the default (true)
}

// LoggingConfig controls the log level for both CLI and TUI modes.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// DeletesNeedConfirmation reports whether delete actions ask first.
func (u UIConfig) DeletesNeedConfirmation() bool {
	return u.ConfirmDeletes == nil || *u.ConfirmDeletes
}
