package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/crmctl"
	projectConfigDir = ".crmctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (CrmConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, statErr := os.Stat(userConfigPath); statErr == nil {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return CrmConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, statErr := os.Stat(projectConfigPath); statErr == nil {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return CrmConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// LoadConfigFromPath loads defaults overlaid with exactly one file.
func LoadConfigFromPath(path string) (CrmConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return CrmConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a CrmConfig from a YAML file.
func loadConfigFromFile(filePath string) (CrmConfig, error) {
	var config CrmConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CrmConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CrmConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' into 'base'. Zero values in overlay leave base untouched.
func mergeConfigs(base, overlay CrmConfig) CrmConfig {
	merged := base

	if overlay.Backend.BaseURL != "" {
		merged.Backend.BaseURL = overlay.Backend.BaseURL
	}
	if overlay.Backend.Timeout != 0 {
		merged.Backend.Timeout = overlay.Backend.Timeout
	}

	if overlay.UI.SearchDebounce != 0 {
		merged.UI.SearchDebounce = overlay.UI.SearchDebounce
	}
	if overlay.UI.StatusMessageDuration != 0 {
		merged.UI.StatusMessageDuration = overlay.UI.StatusMessageDuration
	}
	if overlay.UI.ConfirmDeletes != nil {
		v := *overlay.UI.ConfirmDeletes
		merged.UI.ConfirmDeletes = &v
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// Validate checks the values that would otherwise fail late at request time.
func (c CrmConfig) Validate() error {
	var errs []error

	u, err := url.Parse(c.Backend.BaseURL)
	switch {
	case c.Backend.BaseURL == "":
		errs = append(errs, errors.New("backend.baseURL must be set"))
	case err != nil:
		errs = append(errs, fmt.Errorf("backend.baseURL is not a valid URL: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("backend.baseURL must use http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, errors.New("backend.baseURL must include a host"))
	}

	if c.Backend.Timeout < 0 {
		errs = append(errs, errors.New("backend.timeout must not be negative"))
	}
	if c.UI.SearchDebounce < 0 {
		errs = append(errs, errors.New("ui.searchDebounce must not be negative"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return errors.Join(errs...)
}
